package service

import (
	"context"
	"testing"

	"github.com/dhruv0307t-del/ERP-Farm/internal/config"
	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*model.User{}, nextID: 1}
}

func (r *stubUserRepo) Create(ctx context.Context, u *model.User) error { return r.CreateTx(nil, u) }

func (r *stubUserRepo) CreateTx(tx *gorm.DB, u *model.User) error {
	if _, exists := r.users[u.Username]; exists {
		return gorm.ErrDuplicatedKey
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ListFarmAdmins(ctx context.Context, farmID uint) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.IsAdmin && u.FarmID != nil && *u.FarmID == farmID && u.Email != nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) DB() *gorm.DB { return nil }

type stubFarmRepo struct {
	farms  map[uint]*model.Farm
	nextID uint
}

func newStubFarmRepo() *stubFarmRepo {
	return &stubFarmRepo{farms: map[uint]*model.Farm{}, nextID: 1}
}

func (r *stubFarmRepo) Create(ctx context.Context, f *model.Farm) error { return r.CreateTx(nil, f) }

func (r *stubFarmRepo) CreateTx(tx *gorm.DB, f *model.Farm) error {
	f.ID = r.nextID
	r.nextID++
	r.farms[f.ID] = f
	return nil
}

func (r *stubFarmRepo) FindByID(ctx context.Context, id uint) (*model.Farm, error) {
	f, ok := r.farms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func authFixture(t *testing.T) (*stubUserRepo, *stubFarmRepo, AuthService) {
	t.Helper()
	users := newStubUserRepo()
	farms := newStubFarmRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return users, farms, NewAuthService(users, farms, cfg)
}

func TestSignup_CreatesFarmAndAdminUser(t *testing.T) {
	users, farms, svc := authFixture(t)

	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		FarmName:     "Green Acres",
		FarmLocation: "Nakuru",
		Username:     "jane",
		Password:     "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.True(t, resp.User.IsAdmin)
	require.NotNil(t, resp.User.FarmID)

	farm, err := farms.FindByID(context.Background(), *resp.User.FarmID)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", farm.Name)

	// Full name falls back to the username when left blank.
	u := users.users["jane"]
	require.NotNil(t, u.FullName)
	assert.Equal(t, "jane", *u.FullName)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
}

func TestSignup_UsernameTaken(t *testing.T) {
	users, _, svc := authFixture(t)
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "jane", PasswordHash: "x"}))

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		FarmName: "Green Acres",
		Username: "jane",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	users, _, svc := authFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	farmID := uint(4)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:     "jane",
		PasswordHash: string(hash),
		FarmID:       &farmID,
	}))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "jane", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "jane", resp.User.Username)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	// Token carries the identity claims and verifies with the shared secret.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "jane", claims["username"])
	assert.Equal(t, float64(4), claims["farm_id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	users, _, svc := authFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{Username: "jane", PasswordHash: string(hash)}))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "jane", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, _, svc := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
