package services

import (
	"encoding/json"

	"tradepost/internal/domain"
	"tradepost/internal/store"
)

// WishlistService keeps a per-session set of saved product ids in durable
// local storage, with toggle semantics.
type WishlistService struct {
	KV      *store.KV
	Catalog *store.Catalog
}

func NewWishlistService(kv *store.KV, catalog *store.Catalog) *WishlistService {
	return &WishlistService{KV: kv, Catalog: catalog}
}

func wishlistKey(sid string) string { return "wishlist:" + sid }

func (s *WishlistService) load(sid string) []int64 {
	var ids []int64
	raw := s.KV.Get(wishlistKey(sid), "[]")
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

func (s *WishlistService) save(sid string, ids []int64) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.KV.Put(wishlistKey(sid), string(b))
}

// Toggle adds the product when absent and removes it when present,
// reporting whether it is now saved.
func (s *WishlistService) Toggle(sid string, productID int64) (saved bool, err error) {
	if _, err := s.Catalog.GetProduct(productID); err != nil {
		return false, err
	}
	ids := s.load(sid)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			return false, s.save(sid, ids)
		}
	}
	ids = append(ids, productID)
	return true, s.save(sid, ids)
}

func (s *WishlistService) Contains(sid string, productID int64) bool {
	for _, id := range s.load(sid) {
		if id == productID {
			return true
		}
	}
	return false
}

// List resolves saved ids to products, dropping ids that no longer resolve.
func (s *WishlistService) List(sid string) []domain.Product {
	out := []domain.Product{}
	for _, id := range s.load(sid) {
		if p, err := s.Catalog.GetProduct(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}
