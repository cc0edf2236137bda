package repo

import (
	"context"
	"errors"
	"time"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows a user listing; nil fields are not applied.
type UserFilter struct {
	Limit     int
	ProjectID *uuid.UUID
	Domain    *model.DomainType
	Env       *model.EnvType
}

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context, f UserFilter) ([]model.User, error)
	Save(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, u *model.User) error
	AcquireLock(ctx context.Context, login string, at time.Time) (*model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context, f UserFilter) ([]model.User, error) {
	q := r.db.WithContext(ctx)
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	}
	if f.Domain != nil {
		q = q.Where("domain = ?", *f.Domain)
	}
	if f.Env != nil {
		q = q.Where("env = ?", *f.Env)
	}

	var users []model.User
	return users, q.Limit(f.Limit).Find(&users).Error
}

// Save writes every column of u, including nullable ones, so clearing
// project_id or locktime works through a plain save of the full record.
func (r *userRepo) Save(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}

// AcquireLock claims the advisory lock with a single conditional update
// guarded by "locktime IS NULL", so two concurrent acquirers can never both
// succeed: the store serializes the updates and the loser matches zero rows.
func (r *userRepo) AcquireLock(ctx context.Context, login string, at time.Time) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("login = ? AND locktime IS NULL", login).
			Update("locktime", at)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Distinguish a missing user from a held lock.
			if err := tx.Where("login = ?", login).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return model.ErrUserNotFound
				}
				return err
			}
			return model.ErrUserLocked
		}
		return tx.Where("login = ?", login).First(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
