package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"foodist_api/internal/model"
	"foodist_api/internal/repository"
	"foodist_api/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users     []*model.User
	nextID    int
	createErr error
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.APIToken == user.APIToken {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsWithToken(ctx context.Context, apiToken string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	for _, u := range f.users {
		if u.APIToken == apiToken {
			return true, nil
		}
	}
	return false, nil
}

// stubTokenGen returns a scripted sequence of tokens
type stubTokenGen struct {
	tokens []string
	calls  int
}

func (s *stubTokenGen) Generate() string {
	token := s.tokens[s.calls%len(s.tokens)]
	s.calls++
	return token
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestAuthService(repo repository.UserRepository, gen TokenGenerator, strict bool) AuthService {
	return NewAuthService(repo, utils.NewJWTUtil("secret", 1), gen, testLogger(), strict)
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice Appleseed")

	assert.NoError(t, err)
	require.Len(t, repo.users, 1)
	user := repo.users[0]
	assert.Equal(t, "alice@example.com", user.Username)
	assert.Equal(t, model.AuthorityUser, user.Authority)
	assert.True(t, user.Enabled)
	assert.Equal(t, model.DefaultImageURL, user.ImageURL)
	assert.Len(t, user.APIToken, utils.APITokenLength)
	require.NotNil(t, user.FirstName)
	assert.Equal(t, "Alice Appleseed", *user.FirstName)
	assert.Nil(t, user.LastName)
	assert.True(t, utils.CheckPasswordHash("password123", user.PasswordHash))
}

func TestAuthService_Register_EmptyPayloadIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	assert.NoError(t, svc.Register(context.Background(), "", "", ""))
	assert.NoError(t, svc.Register(context.Background(), "alice@example.com", "", ""))
	assert.NoError(t, svc.Register(context.Background(), "", "password123", ""))
	assert.Empty(t, repo.users, "no-op registration must not create users")
}

func TestAuthService_Register_StrictValidation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), true)

	err := svc.Register(context.Background(), "", "", "")

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, repo.users)
}

func TestAuthService_Register_TokensAreUnique(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	require.NoError(t, svc.Register(context.Background(), "a@x.com", "password123", "A"))
	require.NoError(t, svc.Register(context.Background(), "b@x.com", "password123", "B"))

	require.Len(t, repo.users, 2)
	assert.NotEqual(t, repo.users[0].APIToken, repo.users[1].APIToken)
}

func TestAuthService_Register_CollisionRetry(t *testing.T) {
	repo := newFakeUserRepo()
	// Seed a user already holding the colliding token.
	repo.users = append(repo.users, &model.User{ID: 1, Username: "taken@x.com", APIToken: "colliding"})
	repo.nextID = 2

	gen := &stubTokenGen{tokens: []string{"colliding", "colliding", "fresh"}}
	svc := newTestAuthService(repo, gen, false)

	err := svc.Register(context.Background(), "bob@x.com", "password123", "Bob")

	assert.NoError(t, err)
	assert.Equal(t, 3, gen.calls)
	require.Len(t, repo.users, 2)
	assert.Equal(t, "fresh", repo.users[1].APIToken)
}

func TestAuthService_Register_TokenExhaustion(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = append(repo.users, &model.User{ID: 1, Username: "taken@x.com", APIToken: "colliding"})
	repo.nextID = 2

	gen := &stubTokenGen{tokens: []string{"colliding"}}
	svc := newTestAuthService(repo, gen, false)

	err := svc.Register(context.Background(), "bob@x.com", "password123", "Bob")

	assert.ErrorIs(t, err, ErrTokenExhausted)
	assert.Equal(t, maxTokenAttempts, gen.calls)
	assert.Len(t, repo.users, 1, "failed registration must not write a row")
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	require.NoError(t, svc.Register(context.Background(), "a@x.com", "password123", "A"))
	err := svc.Register(context.Background(), "a@x.com", "password123", "A")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1, "population must be unchanged after a rejected registration")
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection refused")
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	err := svc.Register(context.Background(), "a@x.com", "password123", "A")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists, "connectivity failure must not be reported as duplicate")
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)
	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "password123", "Alice"))

	user, token, err := svc.Login(context.Background(), "alice@example.com", "password123")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Username)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)
	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "password123", "Alice"))

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)
	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "password123", "Alice"))
	repo.users[0].Enabled = false

	_, _, err := svc.Login(context.Background(), "alice@example.com", "password123")

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_GetUserInfo(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)
	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "password123", "Alice Appleseed"))

	info, err := svc.GetUserInfo(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	require.NotNil(t, info)
	require.NotNil(t, info.FirstName)
	assert.Equal(t, "Alice Appleseed", *info.FirstName)
	assert.Equal(t, model.DefaultImageURL, info.ImageURL)
}

func TestAuthService_GetUserInfo_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	info, err := svc.GetUserInfo(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)
	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "password123", "Alice"))

	identity, err := svc.ResolveIdentity(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, repo.users[0].ID, identity.UserID)
	assert.Equal(t, repo.users[0].APIToken, identity.APIToken)
}

func TestAuthService_ResolveIdentity_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, utils.NewAPITokenGenerator(), false)

	identity, err := svc.ResolveIdentity(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, identity)
}
