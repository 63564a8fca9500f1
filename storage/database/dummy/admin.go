package dummydb

import (
	"context"

	"github.com/tshims/potea/core/admin"
)

type adminRepository struct {
	db *DB
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CheckUsernameUniqueness(_ context.Context, username string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, adm := range repo.db.admins {
		if adm.Username == username {
			return admin.ErrUsernameExists
		}
	}
	return nil
}

func (repo *adminRepository) CreateAdmin(_ context.Context, adm admin.Admin) (admin.Admin, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.adminPK++
	adm.ID = repo.db.adminPK
	repo.db.admins[adm.ID] = &adm
	return adm, nil
}

func (repo *adminRepository) GetAdminByID(_ context.Context, id int) (admin.Admin, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if adm, ok := repo.db.admins[id]; ok {
		return *adm, nil
	}
	return admin.Admin{}, admin.ErrNotFound
}

func (repo *adminRepository) GetAdminByUsername(_ context.Context, username string) (admin.Admin, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, adm := range repo.db.admins {
		if adm.Username == username {
			return *adm, nil
		}
	}
	return admin.Admin{}, admin.ErrNotFound
}
