package domain

// Role is the tagged role a user can act under.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Hash  string `json:"-"`

	Roles      []Role `json:"roles"`
	ActiveRole Role   `json:"activeRole"`

	// SellerID links a seller-role user to its Seller record; 0 = none.
	SellerID int64 `json:"sellerId,omitempty"`
}

func (u User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}
