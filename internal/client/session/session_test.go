package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctfgrid/ctfgrid/internal/client/storage"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// mockGateway implements Gateway for testing
type mockGateway struct {
	loginEnv    api.Envelope[api.TokenData]
	registerEnv api.Envelope[api.User]
	userEnv     api.Envelope[api.User]

	loginCalls    int
	registerCalls int
	userCalls     int
}

func (m *mockGateway) Login(ctx context.Context, req api.LoginRequest) api.Envelope[api.TokenData] {
	m.loginCalls++
	return m.loginEnv
}

func (m *mockGateway) Register(ctx context.Context, req api.RegisterRequest) api.Envelope[api.User] {
	m.registerCalls++
	return m.registerEnv
}

func (m *mockGateway) GetCurrentUser(ctx context.Context) api.Envelope[api.User] {
	m.userCalls++
	return m.userEnv
}

// memTokenStore implements storage.TokenStore for testing
type memTokenStore struct {
	mu   sync.Mutex
	data *storage.TokenData
}

func (m *memTokenStore) SaveToken(ctx context.Context, token *storage.TokenData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *token
	m.data = &copied
	return nil
}

func (m *memTokenStore) GetToken(ctx context.Context) (*storage.TokenData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, storage.ErrTokenNotFound
	}
	copied := *m.data
	return &copied, nil
}

func (m *memTokenStore) DeleteToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func (m *memTokenStore) stored() *storage.TokenData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser() api.User {
	return api.User{ID: 7, Name: "player1", Email: "p1@example.com"}
}

func TestService_InitialStatusUnknown(t *testing.T) {
	svc := NewService(&mockGateway{}, &memTokenStore{}, testLogger())

	assert.Equal(t, StatusUnknown, svc.Status())
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.User())
}

func TestService_RefreshUser_NoToken(t *testing.T) {
	gw := &mockGateway{}
	svc := NewService(gw, &memTokenStore{}, testLogger())

	err := svc.RefreshUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusAnonymous, svc.Status())
	assert.False(t, svc.IsAuthenticated())
	// no profile fetch without a token
	assert.Zero(t, gw.userCalls)
}

func TestService_RefreshUser_ValidToken(t *testing.T) {
	gw := &mockGateway{userEnv: api.Ok(testUser())}
	tokens := &memTokenStore{data: &storage.TokenData{
		Token:     "stored-token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	svc := NewService(gw, tokens, testLogger())

	err := svc.RefreshUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusAuthenticated, svc.Status())
	assert.True(t, svc.IsAuthenticated())
	require.NotNil(t, svc.User())
	assert.Equal(t, "player1", svc.User().Name)
}

func TestService_RefreshUser_StaleToken(t *testing.T) {
	gw := &mockGateway{
		userEnv: api.Fail[api.User](api.ErrorKindBackend, "invalid token"),
	}
	tokens := &memTokenStore{data: &storage.TokenData{
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	svc := NewService(gw, tokens, testLogger())

	err := svc.RefreshUser(context.Background())
	require.NoError(t, err)

	// token and user must be cleared together
	assert.Equal(t, StatusAnonymous, svc.Status())
	assert.Nil(t, svc.User())
	assert.Nil(t, tokens.stored())
}

func TestService_Login_Success(t *testing.T) {
	gw := &mockGateway{
		loginEnv: api.Ok(api.TokenData{Token: "fresh-token"}),
		userEnv:  api.Ok(testUser()),
	}
	tokens := &memTokenStore{}
	svc := NewService(gw, tokens, testLogger())

	err := svc.Login(context.Background(), "player1", "correct-password")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, 7, svc.User().ID)

	stored := tokens.stored()
	require.NotNil(t, stored)
	assert.Equal(t, "fresh-token", stored.Token)

	// fixed 7-day expiry
	wantExpiry := time.Now().Add(TokenTTL).Unix()
	assert.InDelta(t, wantExpiry, stored.ExpiresAt, 5)
}

func TestService_Login_Failure(t *testing.T) {
	gw := &mockGateway{
		loginEnv: api.Fail[api.TokenData](api.ErrorKindBackend, "Your username or password is incorrect"),
	}
	tokens := &memTokenStore{}
	svc := NewService(gw, tokens, testLogger())

	err := svc.Login(context.Background(), "player1", "wrong-password")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, []string{"Your username or password is incorrect"}, authErr.Errors)

	assert.False(t, svc.IsAuthenticated())
	assert.Equal(t, StatusAnonymous, svc.Status())
	assert.Nil(t, tokens.stored())
}

func TestService_Login_ProfileFetchFails(t *testing.T) {
	gw := &mockGateway{
		loginEnv: api.Ok(api.TokenData{Token: "fresh-token"}),
		userEnv:  api.Fail[api.User](api.ErrorKindTransport, "network error"),
	}
	tokens := &memTokenStore{}
	svc := NewService(gw, tokens, testLogger())

	err := svc.Login(context.Background(), "player1", "correct-password")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, tokens.stored())
}

func TestService_Register_AutoLogin(t *testing.T) {
	gw := &mockGateway{
		registerEnv: api.Ok(testUser()),
		loginEnv:    api.Ok(api.TokenData{Token: "fresh-token"}),
		userEnv:     api.Ok(testUser()),
	}
	svc := NewService(gw, &memTokenStore{}, testLogger())

	err := svc.Register(context.Background(), "player1", "p1@example.com", "correct-password")
	require.NoError(t, err)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, 1, gw.registerCalls)
	assert.Equal(t, 1, gw.loginCalls)
}

func TestService_Register_AutoLoginFails(t *testing.T) {
	gw := &mockGateway{
		registerEnv: api.Ok(testUser()),
		loginEnv:    api.Fail[api.TokenData](api.ErrorKindBackend, "account locked"),
	}
	tokens := &memTokenStore{}
	svc := NewService(gw, tokens, testLogger())

	err := svc.Register(context.Background(), "player1", "p1@example.com", "correct-password")

	// The account exists server-side, but the caller sees a login-shaped
	// failure and the session stays non-authenticated.
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, []string{"account locked"}, authErr.Errors)

	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, tokens.stored())
}

func TestService_Register_Failure(t *testing.T) {
	gw := &mockGateway{
		registerEnv: api.Fail[api.User](api.ErrorKindBackend, "name already taken"),
	}
	svc := NewService(gw, &memTokenStore{}, testLogger())

	err := svc.Register(context.Background(), "player1", "p1@example.com", "pw")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Zero(t, gw.loginCalls)
	assert.Equal(t, StatusAnonymous, svc.Status())
}

func TestService_Logout(t *testing.T) {
	gw := &mockGateway{
		loginEnv: api.Ok(api.TokenData{Token: "fresh-token"}),
		userEnv:  api.Ok(testUser()),
	}
	tokens := &memTokenStore{}
	svc := NewService(gw, tokens, testLogger())

	require.NoError(t, svc.Login(context.Background(), "player1", "correct-password"))
	require.True(t, svc.IsAuthenticated())

	err := svc.Logout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusAnonymous, svc.Status())
	assert.Nil(t, svc.User())
	assert.Nil(t, tokens.stored())
}

func TestService_ConcurrentRefreshes(t *testing.T) {
	gw := &mockGateway{userEnv: api.Ok(testUser())}
	tokens := &memTokenStore{data: &storage.TokenData{
		Token:     "stored-token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	svc := NewService(gw, tokens, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.RefreshUser(context.Background())
		}()
	}
	wg.Wait()

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, 8, gw.userCalls)
}

func TestService_UserReturnsCopy(t *testing.T) {
	gw := &mockGateway{userEnv: api.Ok(testUser())}
	tokens := &memTokenStore{data: &storage.TokenData{
		Token:     "stored-token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	svc := NewService(gw, tokens, testLogger())
	require.NoError(t, svc.RefreshUser(context.Background()))

	u := svc.User()
	u.Name = "mutated"

	assert.Equal(t, "player1", svc.User().Name)
}
