package dummydb

import (
	"context"

	"github.com/tshims/potea/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.userPK++
	usr.ID = repo.db.userPK
	repo.db.users[usr.ID] = &usr
	return usr, nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id int) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.users[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByFullName(_ context.Context, fullName string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// lowest id wins on duplicate names, matching the SQL repo
	var found *user.User
	for _, usr := range repo.db.users {
		if usr.FullName != fullName {
			continue
		}
		if found == nil || usr.ID < found.ID {
			found = usr
		}
	}
	if found == nil {
		return user.User{}, user.ErrNotFound
	}
	return *found, nil
}
