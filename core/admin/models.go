package admin

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/tshims/potea/core"
)

// Admin is a staff account identified by a unique username.
type Admin struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Username     string    `db:"username" json:"username"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"` // UTC
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"` // UTC
}

func (a *Admin) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Admin) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

// NewAdmin contains information needed to create a new Admin.
type NewAdmin struct {
	FullName string `json:"fullName" validate:"required"`
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Password string `json:"password" validate:"required"`
}

func (na *NewAdmin) Validate(validate *validator.Validate) error {
	na.FullName = core.CleanString(na.FullName)
	na.Username = core.CleanString(na.Username, true /* lower */)
	return validate.Struct(na)
}
