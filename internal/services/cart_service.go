package services

import (
	"encoding/json"

	"tradepost/internal/domain"
	"tradepost/internal/store"
)

// CartService keeps a per-session cart in durable local storage. The cart is
// a browsing convenience; purchase requests are the purchase model.
type CartService struct {
	KV      *store.KV
	Catalog *store.Catalog
}

func NewCartService(kv *store.KV, catalog *store.Catalog) *CartService {
	return &CartService{KV: kv, Catalog: catalog}
}

type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartLine struct {
	CartItem
	Name      string       `json:"name"`
	UnitPrice domain.Money `json:"unitPrice"`
	LineTotal domain.Money `json:"lineTotal"`
}

type CartView struct {
	Items []CartLine   `json:"items"`
	Count int          `json:"count"`
	Total domain.Money `json:"total"`
}

func cartKey(sid string) string { return "cart:" + sid }

// load tolerates missing or corrupt stored carts by starting empty.
func (s *CartService) load(sid string) []CartItem {
	var items []CartItem
	raw := s.KV.Get(cartKey(sid), "[]")
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

func (s *CartService) save(sid string, items []CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.KV.Put(cartKey(sid), string(b))
}

// Add merges quantity into an existing line or appends a new one. The
// product must exist.
func (s *CartService) Add(sid string, productID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.Catalog.GetProduct(productID); err != nil {
		return err
	}
	items := s.load(sid)
	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, CartItem{ProductID: productID, Quantity: qty})
	}
	return s.save(sid, items)
}

func (s *CartService) Remove(sid string, productID int64) error {
	items := s.load(sid)
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return s.save(sid, out)
}

// View prices each line at its bulk-tier unit price for the held quantity.
// Lines whose product no longer exists are skipped, not errors.
func (s *CartService) View(sid string) CartView {
	var view CartView
	view.Items = []CartLine{}
	for _, it := range s.load(sid) {
		p, err := s.Catalog.GetProduct(it.ProductID)
		if err != nil {
			continue
		}
		unit := p.UnitPriceFor(it.Quantity)
		line := CartLine{
			CartItem:  it,
			Name:      p.Name,
			UnitPrice: unit,
			LineTotal: domain.Cents(unit.Cents * int64(it.Quantity)),
		}
		view.Items = append(view.Items, line)
		view.Count += it.Quantity
		view.Total.Cents += line.LineTotal.Cents
	}
	view.Total.Currency = domain.DefaultCurrency
	return view
}
