package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	const q = `
		INSERT INTO "user" (full_name, college, year_and_section, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := repo.db.QueryRowxContext(
		ctx, q,
		usr.FullName, usr.College, usr.YearAndSection, usr.Email, usr.PasswordHash, usr.CreatedAt, usr.UpdatedAt,
	).Scan(&usr.ID)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	const q = `SELECT * FROM "user" WHERE id = $1`
	if err := repo.db.GetContext(ctx, &usr, q, id); err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user by id")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByFullName(ctx context.Context, fullName string) (user.User, error) {
	var usr user.User
	const q = `SELECT * FROM "user" WHERE full_name = $1 ORDER BY id LIMIT 1`
	if err := repo.db.GetContext(ctx, &usr, q, fullName); err != nil {
		return user.User{}, trapNoRowsErr(err, user.ErrNotFound, "getting user by full name")
	}
	return usr, nil
}
