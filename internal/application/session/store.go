// Package session owns the authenticated identity of the running client:
// login/register against the injected account directory, role predicates for
// the route guard, and the identity record persisted across restarts.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
	"github.com/aplusmed/marketplace-api/pkg/token"
)

// Namespace of the persisted identity record.
const Namespace = "auth-storage"

// Messages surfaced verbatim as form-level feedback.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgPendingApproval    = "Your vendor application is pending admin approval."
	MsgEmailRegistered    = "Email already registered"
	MsgCustomerRegistered = "Registration successful! You can now log in."
	MsgVendorRegistered   = "Vendor application submitted! Our team will review your application and notify you within 2–3 business days."
)

// Config session store settings.
type Config struct {
	TokenSecret   string
	TokenIssuer   string
	TokenTTL      time.Duration
	LoginDelay    time.Duration // simulated directory latency on login
	RegisterDelay time.Duration // simulated directory latency on register
}

// persistedSession is the auth-storage record: just the signed identity.
// A tampered or expired token degrades to anonymous on load, same as a
// missing record.
type persistedSession struct {
	Token string `json:"token"`
}

// Store is the single source of truth for "who is logged in". All shared
// mutable session state lives behind its mutex; only the identity is
// persisted, never the transient loading/error fields.
type Store struct {
	mu      sync.Mutex
	user    *entity.User
	loading bool
	lastErr string

	directory repository.AccountDirectory
	apps      repository.VendorApplicationRepository
	state     ports.StateStore
	wait      ports.WaitFunc
	cfg       Config
}

// New builds the store and restores the persisted identity, if any.
func New(directory repository.AccountDirectory, apps repository.VendorApplicationRepository, state ports.StateStore, wait ports.WaitFunc, cfg Config) *Store {
	if wait == nil {
		wait = ports.SleepWait
	}
	s := &Store{directory: directory, apps: apps, state: state, wait: wait, cfg: cfg}
	s.restore()
	return s
}

func (s *Store) restore() {
	var rec persistedSession
	found, err := s.state.Load(Namespace, &rec)
	if err != nil || !found || rec.Token == "" {
		return
	}
	id, err := token.Parse(s.cfg.TokenSecret, rec.Token)
	if err != nil {
		// Invalid record is treated as absence, not as an error.
		_ = s.state.Delete(Namespace)
		return
	}
	s.user = &entity.User{
		ID:             id.UserID,
		Email:          id.Email,
		Name:           id.Name,
		Company:        id.Company,
		Role:           id.Role,
		Approved:       id.Approved,
		VendorID:       id.VendorID,
		CommissionRate: id.CommissionRate,
	}
}

// persistLocked writes the identity record; caller holds the mutex.
func (s *Store) persistLocked() {
	if s.user == nil {
		_ = s.state.Delete(Namespace)
		return
	}
	t, err := token.Generate(s.cfg.TokenSecret, s.cfg.TokenIssuer, token.Identity{
		UserID:         s.user.ID,
		Email:          s.user.Email,
		Name:           s.user.Name,
		Company:        s.user.Company,
		Role:           s.user.Role,
		Approved:       s.user.Approved,
		VendorID:       s.user.VendorID,
		CommissionRate: s.user.CommissionRate,
	}, s.cfg.TokenTTL)
	if err != nil {
		return
	}
	_ = s.state.Save(Namespace, persistedSession{Token: t})
}

// begin flips the loading flag and clears the previous attempt's error.
func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

// fail records the form-level message and ends the attempt. A failed login
// leaves the prior session, if any, unchanged.
func (s *Store) fail(err error, msg string) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = msg
	s.mu.Unlock()
	return err
}

// Login looks the identity up by email among known accounts. Seeded demo
// accounts carry no password hash and accept any password; registered
// accounts are verified with bcrypt. On success the identity is set and
// persisted.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, s.fail(domain.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	s.begin()
	s.wait(ctx, s.cfg.LoginDelay)

	acct, err := s.directory.FindByEmail(email)
	if err != nil || acct == nil {
		return nil, s.fail(domain.ErrInvalidCredentials, MsgInvalidCredentials)
	}
	if acct.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
			return nil, s.fail(domain.ErrInvalidCredentials, MsgInvalidCredentials)
		}
	}
	if !acct.Approved {
		return nil, s.fail(domain.ErrPendingApproval, MsgPendingApproval)
	}

	s.mu.Lock()
	u := *acct
	u.PasswordHash = ""
	s.user = &u
	s.loading = false
	s.persistLocked()
	out := u
	s.mu.Unlock()
	return &out, nil
}

// Register creates the account in the directory. Customer accounts are
// immediately usable; vendor accounts start unapproved and also enter the
// admin review queue. The current identity is never mutated — the caller
// still has to log in.
func (s *Store) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return "", s.fail(domain.ErrInvalidInput, "email is required")
	}
	if in.AccountType != entity.RoleCustomer && in.AccountType != entity.RoleVendor {
		return "", s.fail(domain.ErrInvalidInput, "account type must be customer or vendor")
	}

	s.begin()
	s.wait(ctx, s.cfg.RegisterDelay)

	exists, err := s.directory.EmailExists(in.Email)
	if err != nil {
		return "", s.fail(err, "registration failed")
	}
	if exists {
		return "", s.fail(domain.ErrEmailAlreadyRegistered, MsgEmailRegistered)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", s.fail(err, "registration failed")
	}

	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Company:      in.Company,
		Role:         in.AccountType,
		Approved:     in.AccountType == entity.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.directory.Create(user); err != nil {
		return "", s.fail(err, "registration failed")
	}

	msg := MsgCustomerRegistered
	if in.AccountType == entity.RoleVendor {
		msg = MsgVendorRegistered
		app := &entity.VendorApplication{
			ID:          uuid.New().String(),
			Company:     in.Company,
			ContactName: name,
			Email:       in.Email,
			Phone:       in.Phone,
			TaxID:       in.TaxID,
			Status:      entity.ApplicationPending,
			SubmittedAt: now,
		}
		if err := s.apps.Create(app); err != nil {
			return "", s.fail(err, "registration failed")
		}
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return msg, nil
}

// RegisterInput registration form data consumed by the store.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Company     string
	Phone       string
	TaxID       string
	AccountType string // customer | vendor
}

// Logout clears the current identity and its persisted copy. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.lastErr = ""
	s.persistLocked()
	s.mu.Unlock()
}

// Current returns a copy of the identity, or nil when anonymous.
func (s *Store) Current() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether a login/register call is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the ephemeral form-level message of the last failed
// attempt; empty after a successful one.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// IsAdmin reports whether the current identity has the admin role.
func (s *Store) IsAdmin() bool { return s.hasRole(entity.RoleAdmin) }

// IsVendor reports whether the current identity has the vendor role.
func (s *Store) IsVendor() bool { return s.hasRole(entity.RoleVendor) }

// IsCustomer reports whether the current identity has the customer role.
func (s *Store) IsCustomer() bool { return s.hasRole(entity.RoleCustomer) }

func (s *Store) hasRole(role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == role
}
