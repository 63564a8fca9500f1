package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/tshims/potea/core/item"
)

type foundItemRepository struct {
	db *DB
}

var _ item.FoundRepository = (*foundItemRepository)(nil) // interface compliance check

func NewFoundItemRepository(db *DB) *foundItemRepository {
	return &foundItemRepository{db: db}
}

func (repo *foundItemRepository) CreateFoundItem(_ context.Context, it item.FoundItem) (item.FoundItem, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.foundPK++
	it.ID = repo.db.foundPK
	repo.db.foundItems[it.ID] = &it
	return it, nil
}

func (repo *foundItemRepository) GetFoundItemByID(_ context.Context, id int) (item.FoundItem, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if it, ok := repo.db.foundItems[id]; ok {
		return *it, nil
	}
	return item.FoundItem{}, item.ErrNotFound
}

func (repo *foundItemRepository) QueryUnclaimedFoundItems(_ context.Context, limit int) ([]item.FoundItem, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]item.FoundItem, 0, len(repo.db.foundItems))
	for _, it := range repo.db.foundItems {
		if !it.Claimed {
			items = append(items, *it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (repo *foundItemRepository) MarkFoundItemClaimed(_ context.Context, id int) (item.FoundItem, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	it, ok := repo.db.foundItems[id]
	if !ok {
		return item.FoundItem{}, item.ErrNotFound
	}
	it.Claimed = true
	it.UpdatedAt = time.Now().UTC()
	return *it, nil
}
