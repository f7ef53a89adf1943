package services

import (
	"tradepost/internal/domain"
	"tradepost/internal/store"
)

// Role gate: the permission predicates for every gated action. Handlers and
// services call these rather than re-deriving role rules, so each action is
// enforced identically everywhere it appears.

// CanViewAdmin requires the admin role.
func CanViewAdmin(u *domain.User) error {
	if u == nil {
		return domain.PermissionError("login required")
	}
	if !u.HasRole(domain.RoleAdmin) {
		return domain.PermissionError("admin role required")
	}
	return nil
}

// CanAddProduct requires the seller role and a verified seller account.
func CanAddProduct(u *domain.User, catalog *store.Catalog) error {
	if u == nil {
		return domain.PermissionError("login required")
	}
	if !u.HasRole(domain.RoleSeller) || u.SellerID == 0 {
		return domain.PermissionError("seller role required")
	}
	seller, err := catalog.GetSeller(u.SellerID)
	if err != nil {
		return domain.PermissionError("seller account not found")
	}
	if seller.VerificationStatus != domain.VerificationVerified {
		return domain.PermissionError("seller is not verified")
	}
	return nil
}

// CanViewSellerDashboard mirrors CanAddProduct: unverified sellers are sent
// back to complete verification.
func CanViewSellerDashboard(u *domain.User, catalog *store.Catalog) error {
	return CanAddProduct(u, catalog)
}

// CanSubmitRequest requires an authenticated session. Holding the seller
// role is not a rejection: the workflow auto-switches the active role to
// buyer before proceeding.
func CanSubmitRequest(u *domain.User) error {
	if u == nil {
		return domain.PermissionError("login required")
	}
	return nil
}
