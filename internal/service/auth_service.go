package service

import (
	"context"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/config"
	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/model"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Signup creates a Farm and its first (admin) user in one transaction
	// and logs the new user in.
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error)
}

type authService struct {
	users repository.UserRepository
	farms repository.FarmRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, farms repository.FarmRepository, cfg *config.Config) AuthService {
	return &authService{users: users, farms: farms, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.loginResponse(user)
}

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}

	var user *model.User
	txErr := runTx(ctx, s.users.DB(), func(tx *gorm.DB) error {
		farm := &model.Farm{Name: req.FarmName, Location: strPtr(req.FarmLocation)}
		if err := s.farms.CreateTx(tx, farm); err != nil {
			return err
		}
		user = &model.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			FullName:     &fullName,
			IsAdmin:      true,
			FarmID:       &farm.ID,
		}
		return s.users.CreateTx(tx, user)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.loginResponse(user)
}

func (s *authService) loginResponse(user *model.User) (*dto.LoginResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        toUserResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"farm_id":  user.FarmID,
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
