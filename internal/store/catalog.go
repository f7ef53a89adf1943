package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"tradepost/internal/domain"
)

// Notifier receives the purchase-request side effect. The catalog never
// waits on it and never fails because of it.
type Notifier interface {
	Dispatch(recipientID int64, message string, channel domain.Channel)
}

// Catalog is the single source of truth for products, sellers, and purchase
// requests for the lifetime of the process. Reads hand out copies, so a
// snapshot taken before a mutation is never altered by it. Every mutation
// holds the store mutex: it fully applies or leaves state unchanged.
type Catalog struct {
	mu sync.Mutex

	products []domain.Product
	sellers  []domain.Seller
	requests []domain.PurchaseRequest

	nextProductID int64
	nextRequestID int64

	notifier Notifier
	now      func() time.Time
}

// ProductInput is the caller-supplied shape for AddProduct.
type ProductInput struct {
	Name                string
	Description         string
	Category            string
	Price               domain.Money
	Image               string
	StockQuantity       *int
	MinPurchaseQuantity int
	MaxPurchaseQuantity int
	BulkPricing         []domain.BulkTier
	Variants            []domain.Variant
	Tags                []string
	SKU                 string
	Brand               string
	Condition           string
}

func NewCatalog(notifier Notifier) *Catalog {
	c := &Catalog{
		notifier:      notifier,
		now:           time.Now,
		nextProductID: 1,
		nextRequestID: 1,
	}
	return c
}

// Load replaces the catalog contents and re-bases both id counters at
// max(existing)+1. Used for seeding and in tests.
func (c *Catalog) Load(products []domain.Product, sellers []domain.Seller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]domain.Product(nil), products...)
	c.sellers = append([]domain.Seller(nil), sellers...)
	c.nextProductID = 1
	for _, p := range c.products {
		if p.ID >= c.nextProductID {
			c.nextProductID = p.ID + 1
		}
	}
	c.nextRequestID = 1
}

func (c *Catalog) ListProducts() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotProducts(c.products)
}

func (c *Catalog) ListSellers() []domain.Seller {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotSellers(c.sellers)
}

func (c *Catalog) ListPurchaseRequests() []domain.PurchaseRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.PurchaseRequest(nil), c.requests...)
}

func (c *Catalog) GetProduct(id int64) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return domain.Product{}, domain.NotFoundError("product %d not found", id)
}

func (c *Catalog) GetSeller(id int64) (domain.Seller, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sellerByID(id)
	if !ok {
		return domain.Seller{}, domain.NotFoundError("seller %d not found", id)
	}
	return cloneSeller(s), nil
}

// VerifiedSellers returns the id set of verified sellers, the shape the
// query engine consumes for listing-visibility gating.
func (c *Catalog) VerifiedSellers() map[int64]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int64]bool, len(c.sellers))
	for _, s := range c.sellers {
		if s.VerificationStatus == domain.VerificationVerified {
			out[s.ID] = true
		}
	}
	return out
}

func (c *Catalog) ProductsBySeller(sellerID int64) []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.Product
	for _, p := range c.products {
		if p.SellerID == sellerID {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (c *Catalog) RequestsBySeller(sellerID int64) []domain.PurchaseRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.PurchaseRequest
	for _, r := range c.requests {
		if r.SellerID == sellerID {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) RequestsByBuyer(buyerID int64) []domain.PurchaseRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.PurchaseRequest
	for _, r := range c.requests {
		if r.BuyerID == buyerID {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) PendingSellers() []domain.Seller {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.Seller
	for _, s := range c.sellers {
		if s.VerificationStatus == domain.VerificationPending {
			out = append(out, cloneSeller(s))
		}
	}
	return out
}

// AddProduct appends a product on behalf of actingSellerID. The seller must
// exist and be verified; name, price, and category are required.
func (c *Catalog) AddProduct(in ProductInput, actingSellerID int64) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seller, ok := c.sellerByID(actingSellerID)
	if !ok {
		return domain.Product{}, domain.NotFoundError("seller %d not found", actingSellerID)
	}
	if seller.VerificationStatus != domain.VerificationVerified {
		return domain.Product{}, domain.PermissionError("seller %d is not verified", actingSellerID)
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.Product{}, domain.ValidationError("product name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.Product{}, domain.ValidationError("product category is required")
	}
	if in.Price.IsZero() {
		return domain.Product{}, domain.ValidationError("product price is required")
	}
	minQ, maxQ := in.MinPurchaseQuantity, in.MaxPurchaseQuantity
	if minQ < 1 {
		minQ = 1
	}
	if maxQ < 1 {
		maxQ = minQ
	}
	if minQ > maxQ {
		return domain.Product{}, domain.ValidationError("minPurchaseQuantity %d exceeds maxPurchaseQuantity %d", minQ, maxQ)
	}

	tiers := append([]domain.BulkTier(nil), in.BulkPricing...)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinQuantity < tiers[j].MinQuantity })

	p := domain.Product{
		ID:                  c.nextProductID,
		SellerID:            actingSellerID,
		Name:                strings.TrimSpace(in.Name),
		Description:         in.Description,
		Category:            strings.TrimSpace(in.Category),
		Price:               in.Price,
		Image:               in.Image,
		StockQuantity:       in.StockQuantity,
		MinPurchaseQuantity: minQ,
		MaxPurchaseQuantity: maxQ,
		BulkPricing:         tiers,
		Variants:            append([]domain.Variant(nil), in.Variants...),
		Tags:                append([]string(nil), in.Tags...),
		SKU:                 in.SKU,
		Brand:               in.Brand,
		Condition:           in.Condition,
		IsNew:               true,
	}
	c.nextProductID++
	c.products = append(c.products, p)
	return cloneProduct(p), nil
}

// SubmitPurchaseRequest validates the product reference and quantity bounds,
// then appends a pending request and fires the seller notification.
func (c *Catalog) SubmitPurchaseRequest(productID, buyerID int64, quantity int, contact domain.Contact, proposedPrice *domain.Money) (domain.PurchaseRequest, error) {
	c.mu.Lock()

	var product domain.Product
	found := false
	for _, p := range c.products {
		if p.ID == productID {
			product = p
			found = true
			break
		}
	}
	if !found {
		c.mu.Unlock()
		return domain.PurchaseRequest{}, domain.NotFoundError("product %d not found", productID)
	}
	if quantity < product.MinPurchaseQuantity || quantity > product.MaxPurchaseQuantity {
		c.mu.Unlock()
		return domain.PurchaseRequest{}, domain.RangeError(
			"quantity %d outside [%d, %d] for product %d",
			quantity, product.MinPurchaseQuantity, product.MaxPurchaseQuantity, productID)
	}

	req := domain.PurchaseRequest{
		ID:            c.nextRequestID,
		ProductID:     productID,
		SellerID:      product.SellerID,
		BuyerID:       buyerID,
		Quantity:      quantity,
		ProposedPrice: proposedPrice,
		Status:        domain.RequestPending,
		CreatedAt:     c.now(),
		BuyerContact:  contact,
	}
	c.nextRequestID++
	c.requests = append(c.requests, req)
	notifier := c.notifier
	c.mu.Unlock()

	if notifier != nil {
		notifier.Dispatch(product.SellerID,
			"New purchase request for "+product.Name, contact.Channel)
	}
	return req, nil
}

// ApproveSeller marks a seller verified. Approving an already-verified
// seller is a no-op success.
func (c *Catalog) ApproveSeller(sellerID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.sellers {
		if c.sellers[i].ID == sellerID {
			c.sellers[i].VerificationStatus = domain.VerificationVerified
			return nil
		}
	}
	return domain.NotFoundError("seller %d not found", sellerID)
}

// ResolveRequest assigns the terminal status of a pending request. The
// decision itself is external (admin/seller action); this is status
// assignment only.
func (c *Catalog) ResolveRequest(requestID int64, approved bool) (domain.PurchaseRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.requests {
		if c.requests[i].ID != requestID {
			continue
		}
		if c.requests[i].Status != domain.RequestPending {
			return domain.PurchaseRequest{}, domain.ValidationError("request %d already %s", requestID, c.requests[i].Status)
		}
		if approved {
			c.requests[i].Status = domain.RequestApproved
		} else {
			c.requests[i].Status = domain.RequestRejected
		}
		return c.requests[i], nil
	}
	return domain.PurchaseRequest{}, domain.NotFoundError("purchase request %d not found", requestID)
}

func (c *Catalog) sellerByID(id int64) (domain.Seller, bool) {
	for _, s := range c.sellers {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Seller{}, false
}

// Deep copies: slices inside products/sellers must not alias store state.

func cloneProduct(p domain.Product) domain.Product {
	out := p
	out.BulkPricing = append([]domain.BulkTier(nil), p.BulkPricing...)
	out.Variants = append([]domain.Variant(nil), p.Variants...)
	out.Tags = append([]string(nil), p.Tags...)
	if p.StockQuantity != nil {
		q := *p.StockQuantity
		out.StockQuantity = &q
	}
	if p.Rating != nil {
		r := *p.Rating
		out.Rating = &r
	}
	return out
}

func cloneSeller(s domain.Seller) domain.Seller {
	out := s
	out.PaymentMethods = append([]string(nil), s.PaymentMethods...)
	return out
}

func snapshotProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	for i, p := range in {
		out[i] = cloneProduct(p)
	}
	return out
}

func snapshotSellers(in []domain.Seller) []domain.Seller {
	out := make([]domain.Seller, len(in))
	for i, s := range in {
		out[i] = cloneSeller(s)
	}
	return out
}
