package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/apps"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/directory"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/state"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func testConfig() session.Config {
	return session.Config{
		TokenSecret: "test-secret-key-for-unit-tests",
		TokenIssuer: "marketplace-test",
		TokenTTL:    time.Hour,
	}
}

// newTestStore builds a store over a memfs state directory and the seeded demo
// directory, with the wait function disabled.
func newTestStore(t *testing.T) (*session.Store, ports.StateStore, *apps.Memory) {
	t.Helper()
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	appRepo := apps.NewMemory()
	s := session.New(directory.NewMemoryWithDemoAccounts(), appRepo, st, ports.NoWait, testConfig())
	return s, st, appRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminDemoAccount(t *testing.T) {
	s, _, _ := newTestStore(t)

	u, err := s.Login(context.Background(), "admin@aplusmed.com", "anything")
	require.NoError(t, err)

	assert.Equal(t, "admin@aplusmed.com", u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.True(t, s.IsAdmin())
	assert.False(t, s.IsVendor())
	assert.False(t, s.Loading(), "loading must be cleared after the attempt")
	assert.Empty(t, s.LastError())
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "nobody@nowhere.com", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, session.MsgInvalidCredentials, s.LastError())
	assert.Nil(t, s.Current(), "a failed login must not authenticate")
}

func TestLogin_EmptyEmail(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "   ", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnapprovedVendorIsBlocked(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "contact@globalmedical.com", "pw")
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
	assert.Equal(t, session.MsgPendingApproval, s.LastError())
	assert.Nil(t, s.Current())
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "john@hospital.com", "pw")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "nobody@nowhere.com", "pw")
	require.Error(t, err)

	u := s.Current()
	require.NotNil(t, u, "the prior identity must survive a failed attempt")
	assert.Equal(t, "john@hospital.com", u.Email)
}

func TestLogin_NeverExposesPasswordHash(t *testing.T) {
	s, _, _ := newTestStore(t)

	msg, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "new@clinic.com",
		Password:    "s3cret",
		Name:        "New Clinic",
		AccountType: entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, session.MsgCustomerRegistered, msg)

	u, err := s.Login(context.Background(), "new@clinic.com", "s3cret")
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)
	assert.Empty(t, s.Current().PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DuplicateEmail(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "john@hospital.com",
		Password:    "pw",
		AccountType: entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	assert.Equal(t, session.MsgEmailRegistered, s.LastError())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "fresh@clinic.com",
		Password:    "pw",
		AccountType: entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Nil(t, s.Current(), "registration must not log the caller in")
}

func TestRegister_CustomerPasswordIsVerified(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "buyer@clinic.com",
		Password:    "right-password",
		AccountType: entity.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "buyer@clinic.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "buyer@clinic.com", "right-password")
	assert.NoError(t, err)
}

func TestRegister_VendorEntersReviewQueueAndCannotLogIn(t *testing.T) {
	s, _, appRepo := newTestStore(t)

	msg, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "sales@newsupplier.com",
		Password:    "pw",
		Name:        "Jane Doe",
		Company:     "New Supplier Co",
		AccountType: entity.RoleVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, session.MsgVendorRegistered, msg)

	pending, err := appRepo.ListByStatus(entity.ApplicationPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "New Supplier Co", pending[0].Company)
	assert.Equal(t, "sales@newsupplier.com", pending[0].Email)

	_, err = s.Login(context.Background(), "sales@newsupplier.com", "pw")
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
}

func TestRegister_RejectsUnknownAccountType(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Register(context.Background(), session.RegisterInput{
		Email:       "x@y.com",
		Password:    "pw",
		AccountType: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout and persistence
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_ClearsIdentityAndIsIdempotent(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "supplier@medtech.com", "pw")
	require.NoError(t, err)
	require.True(t, s.IsVendor())

	s.Logout()
	assert.Nil(t, s.Current())
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsVendor())
	assert.False(t, s.IsCustomer())

	s.Logout() // second logout is a no-op
	assert.Nil(t, s.Current())
}

func TestPersistence_IdentitySurvivesRestart(t *testing.T) {
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	dir := directory.NewMemoryWithDemoAccounts()
	appRepo := apps.NewMemory()

	s1 := session.New(dir, appRepo, st, ports.NoWait, testConfig())
	_, err = s1.Login(context.Background(), "supplier@safeguard.com", "pw")
	require.NoError(t, err)

	// Same state store, fresh process.
	s2 := session.New(dir, appRepo, st, ports.NoWait, testConfig())
	u := s2.Current()
	require.NotNil(t, u)
	assert.Equal(t, "supplier@safeguard.com", u.Email)
	assert.Equal(t, "VEN-002", u.VendorID)
	assert.Equal(t, "12", u.CommissionRate.String())
	assert.True(t, s2.IsVendor())
}

func TestPersistence_LogoutRemovesTheRecord(t *testing.T) {
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	dir := directory.NewMemoryWithDemoAccounts()
	appRepo := apps.NewMemory()

	s1 := session.New(dir, appRepo, st, ports.NoWait, testConfig())
	_, err = s1.Login(context.Background(), "admin@aplusmed.com", "pw")
	require.NoError(t, err)
	s1.Logout()

	s2 := session.New(dir, appRepo, st, ports.NoWait, testConfig())
	assert.Nil(t, s2.Current())
}

func TestPersistence_TamperedTokenDegradesToAnonymous(t *testing.T) {
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	require.NoError(t, st.Save(session.Namespace, map[string]string{"token": "not.a.token"}))

	s := session.New(directory.NewMemoryWithDemoAccounts(), apps.NewMemory(), st, ports.NoWait, testConfig())
	assert.Nil(t, s.Current(), "an unverifiable record must load as anonymous")

	// The broken record is discarded, not kept around.
	var rec map[string]string
	found, err := st.Load(session.Namespace, &rec)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPersistence_WrongSecretDegradesToAnonymous(t *testing.T) {
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	dir := directory.NewMemoryWithDemoAccounts()
	appRepo := apps.NewMemory()

	s1 := session.New(dir, appRepo, st, ports.NoWait, testConfig())
	_, err = s1.Login(context.Background(), "admin@aplusmed.com", "pw")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.TokenSecret = "a-completely-different-secret"
	s2 := session.New(dir, appRepo, st, ports.NoWait, cfg)
	assert.Nil(t, s2.Current())
}
