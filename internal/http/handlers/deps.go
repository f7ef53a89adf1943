package handlers

import (
	"tradepost/internal/config"
	"tradepost/internal/services"
	"tradepost/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	PurchaseHandler *PurchaseHandler
	SellerHandler   *SellerHandler
	AdminHandler    *AdminHandler
	AuthHandler     *AuthHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	PrefsHandler    *PrefsHandler
}

func NewDeps(catalog *store.Catalog, kv *store.KV, cfg config.Config, auth *services.AuthService) *Deps {
	purchaseSvc := services.NewPurchaseService(auth, catalog)
	cartSvc := services.NewCartService(kv, catalog)
	wishSvc := services.NewWishlistService(kv, catalog)
	prefsSvc := services.NewPrefsService(kv)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalog, Auth: auth, VerifiedOnly: cfg.VerifiedOnly},
		PurchaseHandler: &PurchaseHandler{Purchase: purchaseSvc},
		SellerHandler:   &SellerHandler{Catalog: catalog, Auth: auth},
		AdminHandler:    &AdminHandler{Catalog: catalog, Purchase: purchaseSvc},
		AuthHandler:     &AuthHandler{Auth: auth},
		CartHandler:     &CartHandler{Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		PrefsHandler:    &PrefsHandler{Prefs: prefsSvc},
	}
}
