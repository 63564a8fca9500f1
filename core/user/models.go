package user

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/tshims/potea/core"
)

// User is a student account. FullName doubles as the login key,
// so it is expected to be unique in practice.
type User struct {
	ID             int         `db:"id" json:"id"`
	FullName       string      `db:"full_name" json:"fullName"`
	College        string      `db:"college" json:"college"`
	YearAndSection string      `db:"year_and_section" json:"yearAndSection"`
	Email          null.String `db:"email" json:"email"`
	PasswordHash   []byte      `db:"password_hash" json:"-"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"` // UTC
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	FullName       string `json:"fullName" validate:"required"`
	College        string `json:"college" validate:"required"`
	YearAndSection string `json:"yearAndSection" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.FullName = core.CleanString(nu.FullName)
	nu.College = core.CleanString(nu.College)
	nu.YearAndSection = core.CleanString(nu.YearAndSection)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}
