package services_test

import (
	"testing"

	"tradepost/internal/domain"
	"tradepost/internal/services"
	"tradepost/internal/store"
)

func memKV(t *testing.T) *store.KV {
	t.Helper()
	kv, err := store.OpenKV(":memory:")
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestCartAddMergeRemove(t *testing.T) {
	cart := services.NewCartService(memKV(t), newFixtureCatalog(t))

	if err := cart.Add("s1", 2, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Add("s1", 2, 2); err != nil {
		t.Fatalf("merge add: %v", err)
	}
	if err := cart.Add("s1", 12, 1); err != nil {
		t.Fatalf("second line: %v", err)
	}

	v := cart.View("s1")
	if len(v.Items) != 2 || v.Count != 4 {
		t.Fatalf("view = %d lines count %d, want 2 lines count 4", len(v.Items), v.Count)
	}
	if v.Items[0].Quantity != 3 {
		t.Fatalf("merged quantity = %d, want 3", v.Items[0].Quantity)
	}

	if err := cart.Remove("s1", 2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	v = cart.View("s1")
	if len(v.Items) != 1 || v.Items[0].ProductID != 12 {
		t.Fatalf("after remove: %+v", v.Items)
	}
}

func TestCartPricesAtBulkTier(t *testing.T) {
	cart := services.NewCartService(memKV(t), newFixtureCatalog(t))

	// product 2 drops to $139.99/unit at 5+
	if err := cart.Add("s1", 2, 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	v := cart.View("s1")
	if v.Items[0].UnitPrice.Cents != 13999 {
		t.Fatalf("unit price = %d, want bulk tier 13999", v.Items[0].UnitPrice.Cents)
	}
	if v.Total.Cents != 5*13999 {
		t.Fatalf("total = %d, want %d", v.Total.Cents, 5*13999)
	}
}

func TestCartUnknownProductRejected(t *testing.T) {
	cart := services.NewCartService(memKV(t), newFixtureCatalog(t))
	if err := cart.Add("s1", 404, 1); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found error", err)
	}
}

func TestCartCorruptStorageStartsEmpty(t *testing.T) {
	kv := memKV(t)
	if err := kv.Put("cart:s1", "{not json"); err != nil {
		t.Fatalf("put: %v", err)
	}
	cart := services.NewCartService(kv, newFixtureCatalog(t))
	v := cart.View("s1")
	if len(v.Items) != 0 || v.Total.Cents != 0 {
		t.Fatalf("corrupt cart should read as empty, got %+v", v)
	}
}

func TestCartIsolatedPerSession(t *testing.T) {
	cart := services.NewCartService(memKV(t), newFixtureCatalog(t))
	if err := cart.Add("s1", 2, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if v := cart.View("s2"); len(v.Items) != 0 {
		t.Fatalf("session s2 sees s1's cart: %+v", v.Items)
	}
}

func TestWishlistToggle(t *testing.T) {
	wl := services.NewWishlistService(memKV(t), newFixtureCatalog(t))

	saved, err := wl.Toggle("s1", 2)
	if err != nil || !saved {
		t.Fatalf("first toggle = %v,%v, want saved", saved, err)
	}
	if !wl.Contains("s1", 2) {
		t.Fatal("Contains false after save")
	}
	saved, err = wl.Toggle("s1", 2)
	if err != nil || saved {
		t.Fatalf("second toggle = %v,%v, want removed", saved, err)
	}
	if wl.Contains("s1", 2) {
		t.Fatal("Contains true after removal")
	}
	if _, err := wl.Toggle("s1", 404); !domain.IsNotFound(err) {
		t.Fatalf("unknown product: err = %v, want not-found", err)
	}
}

func TestWishlistListDropsStaleIDs(t *testing.T) {
	kv := memKV(t)
	wl := services.NewWishlistService(kv, newFixtureCatalog(t))
	if err := kv.Put("wishlist:s1", "[2,404,12]"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got := wl.List("s1")
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 12 {
		t.Fatalf("list = %+v, want products 2 and 12 only", got)
	}
}

func TestPrefsTheme(t *testing.T) {
	prefs := services.NewPrefsService(memKV(t))

	if got := prefs.Theme("s1"); got != services.ThemeLight {
		t.Fatalf("default theme = %q, want light", got)
	}
	if err := prefs.SetTheme("s1", services.ThemeDark); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := prefs.Theme("s1"); got != services.ThemeDark {
		t.Fatalf("theme = %q, want dark", got)
	}
	if err := prefs.SetTheme("s1", "neon"); !domain.IsValidation(err) {
		t.Fatalf("bad theme: err = %v, want validation error", err)
	}
}
