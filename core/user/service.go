package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/tshims/potea/core"
)

var ErrNotFound = errors.New("user not found")

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		GetUserByFullName(ctx context.Context, fullName string) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

// Register hashes the password and persists a new User.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		FullName:       nu.FullName,
		College:        nu.College,
		YearAndSection: nu.YearAndSection,
		Email:          null.NewString(nu.Email, nu.Email != ""),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}

	svc.sendWelcomeEmail(usr)
	return usr, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByFullName(ctx context.Context, fullName string) (User, error) {
	return svc.repo.GetUserByFullName(ctx, core.CleanString(fullName))
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if !usr.Email.Valid {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.FullName, Address: usr.Email.String}},
		Subject: "Welcome!",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour %s account has been created. "+
				"You can now report lost items and check recent found items at %s.",
			usr.FullName, svc.conf.AppName, svc.conf.FrontendBaseURL,
		),
	})
}
