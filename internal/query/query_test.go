package query_test

import (
	"testing"

	"tradepost/internal/domain"
	"tradepost/internal/query"
)

func fptr(f float64) *float64 { return &f }

func fixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Mechanical Keyboard", Category: "Electronics", Price: domain.ParsePrice("$100.00"), Rating: fptr(4.0), SellerID: 2, Tags: []string{"keyboard", "mechanical"}},
		{ID: 2, Name: "Denim Jacket", Category: "Clothing", Price: domain.ParsePrice("$50.00"), Rating: fptr(3.0), SellerID: 3, Tags: []string{"denim"}},
		{ID: 3, Name: "USB Hub", Category: "Electronics", Price: domain.ParsePrice("$25.00"), SellerID: 3, Tags: []string{"usb", "hub"}},
		{ID: 4, Name: "Wool Scarf", Category: "Clothing", Price: domain.ParsePrice("$30.00"), Rating: fptr(4.5), SellerID: 2, Tags: []string{"winter", "wool"}},
	}
}

func verifiedAll() map[int64]bool { return map[int64]bool{2: true, 3: true} }

func ids(r query.Result) []int64 {
	out := make([]int64, 0, len(r.Items))
	for _, p := range r.Items {
		out = append(out, p.ID)
	}
	return out
}

func TestRunCategoryAndSortPriceAsc(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Category = "Electronics"
	spec.Sort = query.SortPriceAsc
	r := query.Run(fixture(), verifiedAll(), spec)
	got := ids(r)
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("got %v, want [3 1]", got)
	}
	for i := 1; i < len(r.Items); i++ {
		if r.Items[i].Price.Cents < r.Items[i-1].Price.Cents {
			t.Fatalf("price-asc not monotone at %d", i)
		}
	}
}

func TestRunPriceRangeAndMinRating(t *testing.T) {
	spec := query.DefaultSpec()
	spec.PriceMin = domain.ParsePrice("$40.00")
	spec.PriceMax = domain.ParsePrice("$120.00")
	spec.MinRating = 3.5
	r := query.Run(fixture(), verifiedAll(), spec)
	got := ids(r)
	// id 2 fails the rating floor, id 3 and 4 fall below the price floor
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}
}

func TestRunMissingRatingTreatedAsZero(t *testing.T) {
	spec := query.DefaultSpec()
	spec.MinRating = 0.1
	r := query.Run(fixture(), verifiedAll(), spec)
	for _, p := range r.Items {
		if p.ID == 3 {
			t.Fatal("unrated product should be excluded by any positive rating floor")
		}
	}
}

func TestRunSearchMatchesNameAndTags(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Search = "WOOL"
	r := query.Run(fixture(), verifiedAll(), spec)
	if got := ids(r); len(got) != 1 || got[0] != 4 {
		t.Fatalf("search by tag: got %v, want [4]", got)
	}

	spec.Search = "jacket"
	r = query.Run(fixture(), verifiedAll(), spec)
	if got := ids(r); len(got) != 1 || got[0] != 2 {
		t.Fatalf("search by name: got %v, want [2]", got)
	}
}

func TestRunVerifiedOnly(t *testing.T) {
	spec := query.DefaultSpec()
	spec.VerifiedOnly = true
	r := query.Run(fixture(), map[int64]bool{2: true}, spec)
	for _, p := range r.Items {
		if p.SellerID != 2 {
			t.Fatalf("product %d from unverified seller %d leaked through", p.ID, p.SellerID)
		}
	}
	if r.Total != 2 {
		t.Fatalf("total = %d, want 2", r.Total)
	}
}

func TestRunPaginationPartitionsResults(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Sort = query.SortNameAsc
	spec.PageSize = 3

	r1 := query.Run(fixture(), verifiedAll(), spec)
	spec.Page = 2
	r2 := query.Run(fixture(), verifiedAll(), spec)

	if len(r1.Items) != 3 || len(r2.Items) != 1 {
		t.Fatalf("page sizes = %d,%d, want 3,1", len(r1.Items), len(r2.Items))
	}
	if r1.TotalPages != 2 || r2.TotalPages != 2 {
		t.Fatalf("totalPages = %d,%d, want 2,2", r1.TotalPages, r2.TotalPages)
	}
	seen := map[int64]bool{}
	for _, id := range append(ids(r1), ids(r2)...) {
		if seen[id] {
			t.Fatalf("product %d appears on two pages", id)
		}
		seen[id] = true
	}
	if len(seen) != 4 {
		t.Fatalf("pages cover %d products, want 4", len(seen))
	}
}

func TestRunOutOfRangePageIsEmpty(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Page = 99
	r := query.Run(fixture(), verifiedAll(), spec)
	if len(r.Items) != 0 {
		t.Fatalf("out-of-range page returned %d items", len(r.Items))
	}
	if r.Total != 4 {
		t.Fatalf("total = %d, want full match count 4", r.Total)
	}
}

func TestRunDefaultsBadPageInputs(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Page = 0
	spec.PageSize = -5
	r := query.Run(fixture(), verifiedAll(), spec)
	if r.Page != 1 {
		t.Fatalf("page = %d, want 1", r.Page)
	}
	if len(r.Items) != 4 {
		t.Fatalf("items = %d, want all 4 under the default page size", len(r.Items))
	}
}

func TestRunSortRatingDescAndNameAsc(t *testing.T) {
	spec := query.DefaultSpec()
	spec.Sort = query.SortRatingDesc
	r := query.Run(fixture(), verifiedAll(), spec)
	if got := ids(r); got[0] != 4 {
		t.Fatalf("rating-desc head = %v, want product 4 first", got)
	}

	spec.Sort = query.SortNameAsc
	r = query.Run(fixture(), verifiedAll(), spec)
	for i := 1; i < len(r.Items); i++ {
		if r.Items[i].Name < r.Items[i-1].Name {
			t.Fatalf("name-asc not monotone at %d", i)
		}
	}
}
