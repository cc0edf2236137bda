package service

import (
	"context"
	"errors"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/botfarm-io/botfarm/internal/modules/repo"
)

// ProjectPatch carries a partial project update; nil fields stay untouched.
type ProjectPatch struct {
	Name *string
}

type ProjectService interface {
	Create(ctx context.Context, name string) (*model.Project, error)
	Get(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context, limit int) ([]model.Project, error)
	Update(ctx context.Context, name string, patch ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, name string) error
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

// Create is idempotent by name: an existing project is returned unchanged.
// A lost read-then-insert race is caught by the unique index on name and
// surfaces as a conflict rather than a duplicate row.
func (s *projectService) Create(ctx context.Context, name string) (*model.Project, error) {
	existing, err := s.r.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrProjectNotFound) {
		return nil, err
	}

	p := &model.Project{Name: name}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, name string) (*model.Project, error) {
	return s.r.GetByName(ctx, name)
}

func (s *projectService) List(ctx context.Context, limit int) ([]model.Project, error) {
	return s.r.List(ctx, limit)
}

func (s *projectService) Update(ctx context.Context, name string, patch ProjectPatch) (*model.Project, error) {
	p, err := s.r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if err := s.r.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, name string) error {
	p, err := s.r.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.r.DeleteDetachingUsers(ctx, p)
}
