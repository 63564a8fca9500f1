package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core/admin"
)

type adminRepository struct {
	db *sqlx.DB
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *sqlx.DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CheckUsernameUniqueness(ctx context.Context, username string) error {
	var exists bool
	const q = `SELECT EXISTS (SELECT 1 FROM admin WHERE username = $1)`
	if err := repo.db.GetContext(ctx, &exists, q, username); err != nil {
		return errors.Wrap(err, "checking admin uniqueness")
	}
	if exists {
		return admin.ErrUsernameExists
	}
	return nil
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, adm admin.Admin) (admin.Admin, error) {
	const q = `
		INSERT INTO admin (full_name, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := repo.db.QueryRowxContext(
		ctx, q,
		adm.FullName, adm.Username, adm.PasswordHash, adm.CreatedAt, adm.UpdatedAt,
	).Scan(&adm.ID)
	if err != nil {
		return admin.Admin{}, errors.Wrap(err, "inserting admin")
	}
	return adm, nil
}

func (repo *adminRepository) GetAdminByID(ctx context.Context, id int) (admin.Admin, error) {
	var adm admin.Admin
	const q = `SELECT * FROM admin WHERE id = $1`
	if err := repo.db.GetContext(ctx, &adm, q, id); err != nil {
		return admin.Admin{}, trapNoRowsErr(err, admin.ErrNotFound, "getting admin by id")
	}
	return adm, nil
}

func (repo *adminRepository) GetAdminByUsername(ctx context.Context, username string) (admin.Admin, error) {
	var adm admin.Admin
	const q = `SELECT * FROM admin WHERE username = $1`
	if err := repo.db.GetContext(ctx, &adm, q, username); err != nil {
		return admin.Admin{}, trapNoRowsErr(err, admin.ErrNotFound, "getting admin by username")
	}
	return adm, nil
}
