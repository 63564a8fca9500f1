package admin

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/tshims/potea/core"
)

var (
	ErrNotFound       = errors.New("admin not found")
	ErrUsernameExists = errors.New("an admin with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(ctx context.Context, username string) error
		CreateAdmin(ctx context.Context, adm Admin) (Admin, error)
		GetAdminByID(ctx context.Context, id int) (Admin, error)
		GetAdminByUsername(ctx context.Context, username string) (Admin, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new Admin. Admins are only created out-of-band
// (ops CLI); there is no public registration route for them.
func (svc *Service) Create(ctx context.Context, na NewAdmin) (Admin, error) {
	if err := svc.repo.CheckUsernameUniqueness(ctx, na.Username); err != nil {
		if err == ErrUsernameExists {
			return Admin{}, core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return Admin{}, errors.Wrap(err, "checking admin uniqueness")
	}

	now := time.Now().UTC()
	adm := Admin{
		FullName:  na.FullName,
		Username:  na.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := adm.SetPassword(na.Password); err != nil {
		return Admin{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateAdmin(ctx, adm)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Admin, error) {
	return svc.repo.GetAdminByID(ctx, id)
}

func (svc *Service) GetByUsername(ctx context.Context, username string) (Admin, error) {
	return svc.repo.GetAdminByUsername(ctx, core.CleanString(username, true /* lower */))
}
