package dummydb

import (
	"context"
	"sort"

	"github.com/tshims/potea/core/item"
)

type lostItemRepository struct {
	db *DB
}

var _ item.LostRepository = (*lostItemRepository)(nil) // interface compliance check

func NewLostItemRepository(db *DB) *lostItemRepository {
	return &lostItemRepository{db: db}
}

func (repo *lostItemRepository) CreateLostItem(_ context.Context, it item.LostItem) (item.LostItem, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.lostPK++
	it.ID = repo.db.lostPK
	repo.db.lostItems[it.ID] = &it
	return it, nil
}

func (repo *lostItemRepository) QueryRecentLostItems(_ context.Context, limit int) ([]item.LostItem, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	return repo.query(nil, limit), nil
}

func (repo *lostItemRepository) QueryLostItemReports(_ context.Context, limit int) ([]item.LostItemReport, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	reports := make([]item.LostItemReport, 0, limit)
	for _, it := range repo.query(nil, limit) {
		report := item.LostItemReport{LostItem: it}
		if usr, ok := repo.db.users[it.UserID]; ok {
			report.ReporterName = usr.FullName
			report.ReporterCollege = usr.College
			report.ReporterYearAndSection = usr.YearAndSection
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (repo *lostItemRepository) QueryLostItemsByUser(_ context.Context, userID, limit int) ([]item.LostItem, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	match := func(it *item.LostItem) bool { return it.UserID == userID }
	return repo.query(match, limit), nil
}

// query returns matching items newest first, capped at limit.
// Callers must hold the lock.
func (repo *lostItemRepository) query(match func(*item.LostItem) bool, limit int) []item.LostItem {
	items := make([]item.LostItem, 0, len(repo.db.lostItems))
	for _, it := range repo.db.lostItems {
		if match == nil || match(it) {
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
	return items
}
