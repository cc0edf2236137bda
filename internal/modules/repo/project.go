package repo

import (
	"context"
	"errors"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByName(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context, limit int) ([]model.Project, error)
	Save(ctx context.Context, p *model.Project) error
	DeleteDetachingUsers(ctx context.Context, p *model.Project) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByName(ctx context.Context, name string) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, limit int) ([]model.Project, error) {
	var projects []model.Project
	return projects, r.db.WithContext(ctx).Limit(limit).Find(&projects).Error
}

func (r *projectRepo) Save(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// DeleteDetachingUsers removes the project and clears project_id on every
// referencing user in one transaction. Users survive project deletion.
func (r *projectRepo) DeleteDetachingUsers(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("project_id = ?", p.ID).
			Update("project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}
