package repository

import (
	"context"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"gorm.io/gorm"
)

// UserRepository defines the data access contract for accounts. Services
// depend on this interface, not on the concrete GORM implementation.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	CreateTx(tx *gorm.DB, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	// ListFarmAdmins returns admin users of a farm that have an email set —
	// the recipients of vaccination reminder mail.
	ListFarmAdmins(ctx context.Context, farmID uint) ([]model.User, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) CreateTx(tx *gorm.DB, u *model.User) error {
	return tx.Create(u).Error
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *userRepo) ListFarmAdmins(ctx context.Context, farmID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("farm_id = ? AND is_admin = ? AND email IS NOT NULL", farmID, true).
		Find(&users).Error
	return users, err
}

func (r *userRepo) DB() *gorm.DB { return r.db }
