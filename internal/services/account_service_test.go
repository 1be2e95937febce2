package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*dbm.Account
	inserted []*dbm.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*dbm.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *dbm.Account) error {
	f.inserted = append(f.inserted, account)
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*dbm.Account, error) {
	for _, account := range f.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	return f.accounts[email], nil
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string) *dbm.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	account := &dbm.Account{
		Name:         "領隊阿芳",
		Email:        email,
		PasswordHash: hash,
		Role:         "leader",
	}
	account.ID = uuid.New()
	repo.accounts[email] = account
	return account
}

func TestLoginIssuesTokenSignedWithConfiguredSecret(t *testing.T) {
	repo := newFakeAccountRepo()
	account := seedAccount(t, repo, "fang@example.com", "hunter22")
	tokens := utils.NewJWTManager("configured-secret")
	service := NewAccountService(repo, tokens)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "fang@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	// The token must verify against the same injected secret, not against
	// whatever happens to sit in the process environment.
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "leader", claims.Role)

	_, err = utils.NewJWTManager("some-other-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "fang@example.com", "hunter22")
	service := NewAccountService(repo, utils.NewJWTManager("configured-secret"))

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "fang@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo(), utils.NewJWTManager("configured-secret"))

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestLoginFailsWhenSecretIsMissing(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "fang@example.com", "hunter22")
	service := NewAccountService(repo, utils.NewJWTManager(""))

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "fang@example.com",
		Password: "hunter22",
	})
	assert.Error(t, err)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "fang@example.com", "hunter22")
	service := NewAccountService(repo, utils.NewJWTManager("configured-secret"))

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "另一位領隊",
		Email:       "fang@example.com",
		Password:    "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}
