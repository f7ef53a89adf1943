// Package query is the catalog query engine: a pure, deterministic
// transformation from a product snapshot plus a filter spec to a display
// page. It never returns an error; degenerate input degrades to empty
// results so browsing stays resilient to malformed filter state.
package query

import (
	"sort"
	"strings"

	"tradepost/internal/domain"
)

// Sort options mirror the storefront's sort dropdown.
type Sort string

const (
	SortDefault    Sort = "default"
	SortPriceAsc   Sort = "price-asc"
	SortPriceDesc  Sort = "price-desc"
	SortRatingDesc Sort = "rating-desc"
	SortNameAsc    Sort = "name-asc"
)

func ValidSort(s Sort) bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc:
		return true
	}
	return false
}

const (
	// CategoryAll disables category filtering.
	CategoryAll = "All"

	DefaultPageSize = 12
	// MaxPriceCents matches the storefront's price slider ceiling ($5000).
	MaxPriceCents = 5000 * 100
)

// Spec is the filter/sort/paginate request.
type Spec struct {
	Category  string
	Search    string
	PriceMin  domain.Money
	PriceMax  domain.Money
	MinRating float64
	Sort      Sort
	Page      int
	PageSize  int

	// VerifiedOnly hides products whose seller is not in the verified set.
	// Listing views choose this explicitly; it is not a store-wide default.
	VerifiedOnly bool
}

// DefaultSpec is the unfiltered first page.
func DefaultSpec() Spec {
	return Spec{
		Category: CategoryAll,
		PriceMax: domain.Cents(MaxPriceCents),
		Sort:     SortDefault,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Result is one display page of the filtered, sorted catalog.
type Result struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
}

// Run filters, stable-sorts, and paginates the snapshot. verified is the id
// set of verified sellers; it is only consulted when spec.VerifiedOnly is
// set.
func Run(products []domain.Product, verified map[int64]bool, spec Spec) Result {
	if spec.Page < 1 {
		spec.Page = 1
	}
	if spec.PageSize <= 0 {
		spec.PageSize = DefaultPageSize
	}

	search := strings.ToLower(strings.TrimSpace(spec.Search))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if spec.Category != "" && spec.Category != CategoryAll && p.Category != spec.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		cents := p.Price.Cents
		if cents < spec.PriceMin.Cents || cents > spec.PriceMax.Cents {
			continue
		}
		if p.RatingOrZero() < spec.MinRating {
			continue
		}
		if spec.VerifiedOnly && !verified[p.SellerID] {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, spec.Sort)

	total := len(filtered)
	totalPages := (total + spec.PageSize - 1) / spec.PageSize

	// Out-of-range pages yield an empty slice; callers treat that as
	// "no results", not an error.
	start := (spec.Page - 1) * spec.PageSize
	if start >= total {
		return Result{Items: []domain.Product{}, Total: total, TotalPages: totalPages, Page: spec.Page}
	}
	end := start + spec.PageSize
	if end > total {
		end = total
	}
	return Result{Items: filtered[start:end], Total: total, TotalPages: totalPages, Page: spec.Page}
}

func matchesSearch(p domain.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func sortProducts(ps []domain.Product, s Sort) {
	switch s {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.Cents < ps[j].Price.Cents })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.Cents > ps[j].Price.Cents })
	case SortRatingDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].RatingOrZero() > ps[j].RatingOrZero() })
	case SortNameAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	default:
		// preserve filtered order
	}
}
