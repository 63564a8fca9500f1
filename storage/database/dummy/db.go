// Package dummydb provides mutex-guarded in-memory repositories,
// for tests and DB-less local hacking.
package dummydb

import (
	"sync"

	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/item"
	"github.com/tshims/potea/core/user"
)

type DB struct {
	sync.RWMutex

	users      map[int]*user.User
	admins     map[int]*admin.Admin
	foundItems map[int]*item.FoundItem
	lostItems  map[int]*item.LostItem

	userPK, adminPK, foundPK, lostPK int
}

func Open() *DB {
	return &DB{
		users:      make(map[int]*user.User),
		admins:     make(map[int]*admin.Admin),
		foundItems: make(map[int]*item.FoundItem),
		lostItems:  make(map[int]*item.LostItem),
	}
}

// Reset empties all tables. Test helper.
func (db *DB) Reset() {
	db.Lock()
	defer db.Unlock()

	db.users = make(map[int]*user.User)
	db.admins = make(map[int]*admin.Admin)
	db.foundItems = make(map[int]*item.FoundItem)
	db.lostItems = make(map[int]*item.LostItem)
	db.userPK, db.adminPK, db.foundPK, db.lostPK = 0, 0, 0, 0
}
