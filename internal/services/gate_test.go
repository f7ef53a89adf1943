package services_test

import (
	"testing"

	"tradepost/internal/domain"
	"tradepost/internal/services"
)

func TestCanViewAdmin(t *testing.T) {
	if err := services.CanViewAdmin(nil); !domain.IsPermission(err) {
		t.Fatalf("nil user: err = %v, want permission error", err)
	}
	buyer := &domain.User{Roles: []domain.Role{domain.RoleBuyer}}
	if err := services.CanViewAdmin(buyer); !domain.IsPermission(err) {
		t.Fatalf("buyer: err = %v, want permission error", err)
	}
	admin := &domain.User{Roles: []domain.Role{domain.RoleAdmin}}
	if err := services.CanViewAdmin(admin); err != nil {
		t.Fatalf("admin: %v", err)
	}
}

func TestCanAddProduct(t *testing.T) {
	catalog := newFixtureCatalog(t)

	if err := services.CanAddProduct(nil, catalog); !domain.IsPermission(err) {
		t.Fatalf("nil user: err = %v, want permission error", err)
	}

	buyer := &domain.User{Roles: []domain.Role{domain.RoleBuyer}}
	if err := services.CanAddProduct(buyer, catalog); !domain.IsPermission(err) {
		t.Fatalf("buyer: err = %v, want permission error", err)
	}

	// marco holds the seller role but his account is still pending
	pending := &domain.User{Roles: []domain.Role{domain.RoleBuyer, domain.RoleSeller}, SellerID: 3}
	if err := services.CanAddProduct(pending, catalog); !domain.IsPermission(err) {
		t.Fatalf("pending seller: err = %v, want permission error", err)
	}

	verified := &domain.User{Roles: []domain.Role{domain.RoleBuyer, domain.RoleSeller}, SellerID: 2}
	if err := services.CanAddProduct(verified, catalog); err != nil {
		t.Fatalf("verified seller: %v", err)
	}

	orphan := &domain.User{Roles: []domain.Role{domain.RoleSeller}, SellerID: 404}
	if err := services.CanAddProduct(orphan, catalog); !domain.IsPermission(err) {
		t.Fatalf("orphan seller: err = %v, want permission error", err)
	}
}

func TestCanSubmitRequest(t *testing.T) {
	if err := services.CanSubmitRequest(nil); !domain.IsPermission(err) {
		t.Fatalf("nil user: err = %v, want permission error", err)
	}
	u := &domain.User{Roles: []domain.Role{domain.RoleSeller}, ActiveRole: domain.RoleSeller}
	if err := services.CanSubmitRequest(u); err != nil {
		t.Fatalf("seller-active user must pass the gate (workflow switches roles): %v", err)
	}
}
