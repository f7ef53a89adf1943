package services

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"tradepost/internal/domain"
	"tradepost/internal/store"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService owns the session table and the user set for the lifetime of
// the process. Sessions bind a sid cookie to a user; the user's active role
// is session-visible state mutated by SwitchRole.
type AuthService struct {
	mu       sync.Mutex
	users    []domain.User
	sessions map[string]int64 // sid -> user id

	kv *store.KV
}

func NewAuthService(kv *store.KV) *AuthService {
	return &AuthService{
		users:    seedUsers(),
		sessions: map[string]int64{},
		kv:       kv,
	}
}

// seedUsers provisions demo accounts: a buyer, a verified seller, a
// pending seller, and an admin. All share the demo password.
func seedUsers() []domain.User {
	mk := func(id int64, email, name string, roles []domain.Role, active domain.Role, sellerID int64) domain.User {
		h, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
		return domain.User{
			ID: id, Email: email, Name: name, Hash: string(h),
			Roles: roles, ActiveRole: active, SellerID: sellerID,
		}
	}
	return []domain.User{
		mk(1, "alice@example.com", "Alice", []domain.Role{domain.RoleBuyer}, domain.RoleBuyer, 0),
		mk(2, "jane@example.com", "Jane Smith", []domain.Role{domain.RoleBuyer, domain.RoleSeller}, domain.RoleSeller, 2),
		mk(3, "marco@example.com", "Marco Rossi", []domain.Role{domain.RoleBuyer, domain.RoleSeller}, domain.RoleSeller, 3),
		mk(4, "admin@example.com", "Admin", []domain.Role{domain.RoleAdmin}, domain.RoleAdmin, 0),
	}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexByEmail(email)
	if i < 0 {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(s.users[i].Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	s.sessions[sid] = s.users[i].ID
	if s.kv != nil {
		// the durable "authenticated" flag the storefront keeps in
		// local storage
		_ = s.kv.Put("token:"+sid, "1")
	}
	u := s.users[i]
	return &u, nil
}

func (s *AuthService) Logout(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	if s.kv != nil {
		_ = s.kv.Delete("token:" + sid)
	}
	return nil
}

// CurrentUser resolves the session to a copy of its user, or nil when the
// session is anonymous.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.sessions[sid]
	if !ok {
		return nil, nil
	}
	i := s.indexByID(uid)
	if i < 0 {
		return nil, nil
	}
	u := s.users[i]
	u.Roles = append([]domain.Role(nil), s.users[i].Roles...)
	return &u, nil
}

// SwitchRole changes the active role of the session's user. The role must
// be held.
func (s *AuthService) SwitchRole(sid string, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.sessions[sid]
	if !ok {
		return domain.PermissionError("login required")
	}
	i := s.indexByID(uid)
	if i < 0 {
		return domain.PermissionError("login required")
	}
	if !s.users[i].HasRole(role) {
		return domain.PermissionError("role %q is not held", role)
	}
	s.users[i].ActiveRole = role
	return nil
}

func (s *AuthService) indexByEmail(email string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i
		}
	}
	return -1
}

func (s *AuthService) indexByID(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
