package service

import (
	"context"
	"time"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/botfarm-io/botfarm/internal/modules/repo"
	"github.com/botfarm-io/botfarm/internal/pkg/utils"
)

type CreateUserInput struct {
	Login       string
	Password    string
	ProjectName *string
	Env         model.EnvType
	Domain      model.DomainType
}

type ListUsersInput struct {
	Limit       int
	ProjectName *string
	Domain      *model.DomainType
	Env         *model.EnvType
}

// UserPatch carries a partial user update; nil fields stay untouched.
// An empty ProjectName detaches the user from its project, and Locktime may
// be set or cleared directly, bypassing the acquire/release state machine
// (administrative override).
type UserPatch struct {
	Password    *string
	ProjectName *string
	Env         *model.EnvType
	Domain      *model.DomainType
	Locktime    *time.Time
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	List(ctx context.Context, in ListUsersInput) ([]model.User, error)
	Get(ctx context.Context, login string, lock bool) (*model.User, error)
	AcquireLock(ctx context.Context, login string) (*model.User, error)
	ReleaseLock(ctx context.Context, login string) (*model.User, error)
	Update(ctx context.Context, login string, patch UserPatch) (*model.User, error)
	Delete(ctx context.Context, login string) error
}

type userService struct {
	users    repo.UserRepo
	projects repo.ProjectRepo
	now      func() time.Time
}

func NewUserService(users repo.UserRepo, projects repo.ProjectRepo) UserService {
	return &userService{
		users:    users,
		projects: projects,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	u := &model.User{
		Login:    in.Login,
		Password: utils.HashPassword(in.Password),
		Env:      in.Env,
		Domain:   in.Domain,
	}

	if in.ProjectName != nil {
		p, err := s.projects.GetByName(ctx, *in.ProjectName)
		if err != nil {
			return nil, err
		}
		u.ProjectID = &p.ID
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, in ListUsersInput) ([]model.User, error) {
	f := repo.UserFilter{
		Limit:  in.Limit,
		Domain: in.Domain,
		Env:    in.Env,
	}
	if in.ProjectName != nil {
		p, err := s.projects.GetByName(ctx, *in.ProjectName)
		if err != nil {
			return nil, err
		}
		f.ProjectID = &p.ID
	}
	return s.users.List(ctx, f)
}

// Get fetches a user by login. With lock=false it is a plain read that still
// refuses locked users; it never takes the lock itself. With lock=true it
// acquires the lock and returns the locked record.
func (s *userService) Get(ctx context.Context, login string, lock bool) (*model.User, error) {
	if lock {
		return s.AcquireLock(ctx, login)
	}
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if u.Locktime != nil {
		return nil, model.ErrUserLocked
	}
	return u, nil
}

func (s *userService) AcquireLock(ctx context.Context, login string) (*model.User, error) {
	return s.users.AcquireLock(ctx, login, s.now())
}

// ReleaseLock clears the lock unconditionally: releasing an unlocked user is
// a no-op and any caller may release any lock (no holder identity is kept).
func (s *userService) ReleaseLock(ctx context.Context, login string) (*model.User, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	u.Locktime = nil
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, login string, patch UserPatch) (*model.User, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	if patch.ProjectName != nil {
		if *patch.ProjectName == "" {
			u.ProjectID = nil
		} else {
			p, err := s.projects.GetByName(ctx, *patch.ProjectName)
			if err != nil {
				return nil, err
			}
			u.ProjectID = &p.ID
		}
	}
	if patch.Password != nil {
		u.Password = utils.HashPassword(*patch.Password)
	}
	if patch.Env != nil {
		u.Env = *patch.Env
	}
	if patch.Domain != nil {
		u.Domain = *patch.Domain
	}
	if patch.Locktime != nil {
		u.Locktime = patch.Locktime
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the user regardless of lock state.
func (s *userService) Delete(ctx context.Context, login string) error {
	u, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, u)
}
