package domain

import "time"

// Channel is a seller/buyer contact channel.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsapp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

func ValidChannel(c Channel) bool {
	switch c {
	case ChannelEmail, ChannelWhatsapp, ChannelTelegram:
		return true
	}
	return false
}

// VerificationStatus of a seller account.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// RequestStatus of a purchase request. Pending is initial; approved and
// rejected are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// BulkTier overrides the unit price once the ordered quantity reaches
// MinQuantity. Tiers are kept sorted by ascending MinQuantity.
type BulkTier struct {
	MinQuantity int   `json:"minQuantity"`
	Price       Money `json:"price"`
}

type Variant struct {
	SKU   string `json:"sku"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
	Price *Money `json:"price,omitempty"`
}

type Product struct {
	ID          int64  `json:"id"`
	SellerID    int64  `json:"sellerId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Price       Money  `json:"price"`
	Image       string `json:"image,omitempty"`

	// nil means unknown/unlimited
	StockQuantity *int `json:"stockQuantity,omitempty"`

	MinPurchaseQuantity int `json:"minPurchaseQuantity"`
	MaxPurchaseQuantity int `json:"maxPurchaseQuantity"`

	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount,omitempty"`

	BulkPricing []BulkTier `json:"bulkPricing,omitempty"`
	Variants    []Variant  `json:"variants,omitempty"`
	Tags        []string   `json:"tags,omitempty"`

	SKU       string `json:"sku,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Condition string `json:"condition,omitempty"` // new | used | refurbished
	IsNew     bool   `json:"isNew,omitempty"`
	IsOnSale  bool   `json:"isOnSale,omitempty"`
}

// UnitPriceFor returns the price per unit at the given quantity: the highest
// bulk tier whose MinQuantity the quantity reaches, or the base price when no
// tier qualifies.
func (p Product) UnitPriceFor(qty int) Money {
	price := p.Price
	for _, t := range p.BulkPricing {
		if qty >= t.MinQuantity {
			price = t.Price
		}
	}
	return price
}

// RatingOrZero treats a missing rating as 0 for filtering and sorting.
func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

type Seller struct {
	ID                     int64              `json:"id"`
	Name                   string             `json:"name"`
	Email                  string             `json:"email"`
	BusinessName           string             `json:"businessName"`
	WhatsappNumber         string             `json:"whatsappNumber,omitempty"`
	TelegramUsername       string             `json:"telegramUsername,omitempty"`
	PreferredCommunication Channel            `json:"preferredCommunication"`
	PaymentMethods         []string           `json:"paymentMethods,omitempty"`
	VerificationStatus     VerificationStatus `json:"verificationStatus"`
}

// ContactAddress returns the seller's address on the given channel, falling
// back to email when the channel has no value on file.
func (s Seller) ContactAddress(c Channel) string {
	switch c {
	case ChannelWhatsapp:
		if s.WhatsappNumber != "" {
			return s.WhatsappNumber
		}
	case ChannelTelegram:
		if s.TelegramUsername != "" {
			return s.TelegramUsername
		}
	}
	return s.Email
}

// Contact is the buyer-side reply address for a purchase request.
type Contact struct {
	Channel Channel `json:"channel"`
	Address string  `json:"address"`
}

type PurchaseRequest struct {
	ID            int64         `json:"id"`
	ProductID     int64         `json:"productId"`
	SellerID      int64         `json:"sellerId"`
	BuyerID       int64         `json:"buyerId"`
	Quantity      int           `json:"quantity"`
	ProposedPrice *Money        `json:"proposedPrice,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	BuyerContact  Contact       `json:"buyerContact"`
}
