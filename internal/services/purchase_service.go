package services

import (
	"tradepost/internal/domain"
	"tradepost/internal/store"
)

// PurchaseService drives the purchase-request workflow:
//
//	unauthenticated -> login-required failure
//	authenticated, active role != buyer, buyer held -> auto-switch to buyer
//	role-verified(buyer) -> validate -> submitted(pending)
//	pending -> approved|rejected (admin/seller decision via Resolve)
//
// Failures are local and leave the catalog untouched.
type PurchaseService struct {
	Auth    *AuthService
	Catalog *store.Catalog
}

func NewPurchaseService(auth *AuthService, catalog *store.Catalog) *PurchaseService {
	return &PurchaseService{Auth: auth, Catalog: catalog}
}

// SubmitInput carries the buyer's request form.
type SubmitInput struct {
	ProductID     int64
	Quantity      int
	Channel       domain.Channel
	ProposedPrice *domain.Money
}

func (s *PurchaseService) Submit(sid string, in SubmitInput) (domain.PurchaseRequest, error) {
	u, err := s.Auth.CurrentUser(sid)
	if err != nil {
		return domain.PurchaseRequest{}, err
	}
	if err := CanSubmitRequest(u); err != nil {
		return domain.PurchaseRequest{}, err
	}

	// A seller browsing the storefront buys as a buyer: switch the active
	// role rather than reject. Callers observe the switch on the session.
	if u.ActiveRole != domain.RoleBuyer && u.HasRole(domain.RoleBuyer) {
		if err := s.Auth.SwitchRole(sid, domain.RoleBuyer); err != nil {
			return domain.PurchaseRequest{}, err
		}
	}

	channel := in.Channel
	if !domain.ValidChannel(channel) {
		channel = domain.ChannelEmail
	}
	contact := domain.Contact{Channel: channel, Address: u.Email}

	return s.Catalog.SubmitPurchaseRequest(in.ProductID, u.ID, in.Quantity, contact, in.ProposedPrice)
}

// RequestsFor lists the session user's own purchase requests.
func (s *PurchaseService) RequestsFor(sid string) ([]domain.PurchaseRequest, error) {
	u, err := s.Auth.CurrentUser(sid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.PermissionError("login required")
	}
	return s.Catalog.RequestsByBuyer(u.ID), nil
}

// Resolve assigns the terminal status of a pending request. Admins may
// resolve any request; a seller only their own.
func (s *PurchaseService) Resolve(sid string, requestID int64, approved bool) (domain.PurchaseRequest, error) {
	u, err := s.Auth.CurrentUser(sid)
	if err != nil {
		return domain.PurchaseRequest{}, err
	}
	if u == nil {
		return domain.PurchaseRequest{}, domain.PermissionError("login required")
	}
	if !u.HasRole(domain.RoleAdmin) {
		if !u.HasRole(domain.RoleSeller) || u.SellerID == 0 {
			return domain.PurchaseRequest{}, domain.PermissionError("admin or seller role required")
		}
		owned := false
		for _, r := range s.Catalog.RequestsBySeller(u.SellerID) {
			if r.ID == requestID {
				owned = true
				break
			}
		}
		if !owned {
			return domain.PurchaseRequest{}, domain.PermissionError("request %d is not yours to resolve", requestID)
		}
	}
	return s.Catalog.ResolveRequest(requestID, approved)
}
