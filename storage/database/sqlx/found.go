package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core/item"
)

type foundItemRepository struct {
	db *sqlx.DB
}

var _ item.FoundRepository = (*foundItemRepository)(nil) // interface compliance check

func NewFoundItemRepository(db *sqlx.DB) *foundItemRepository {
	return &foundItemRepository{db: db}
}

func (repo *foundItemRepository) CreateFoundItem(ctx context.Context, it item.FoundItem) (item.FoundItem, error) {
	const q = `
		INSERT INTO found_item (item_type, item_color, location_found, date_turned_in, found_by_name,
		                        station_kept, additional_notes, claimed, created_by_admin_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := repo.db.QueryRowxContext(
		ctx, q,
		it.ItemType, it.ItemColor, it.LocationFound, it.DateTurnedIn, it.FoundByName,
		it.StationKept, it.AdditionalNotes, it.Claimed, it.CreatedByAdminID, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return item.FoundItem{}, errors.Wrap(err, "inserting found item")
	}
	return it, nil
}

func (repo *foundItemRepository) GetFoundItemByID(ctx context.Context, id int) (item.FoundItem, error) {
	var it item.FoundItem
	const q = `SELECT * FROM found_item WHERE id = $1`
	if err := repo.db.GetContext(ctx, &it, q, id); err != nil {
		return item.FoundItem{}, trapNoRowsErr(err, item.ErrNotFound, "getting found item by id")
	}
	return it, nil
}

func (repo *foundItemRepository) QueryUnclaimedFoundItems(ctx context.Context, limit int) ([]item.FoundItem, error) {
	items := make([]item.FoundItem, 0, limit)
	const q = `SELECT * FROM found_item WHERE NOT claimed ORDER BY created_at DESC, id DESC LIMIT $1`
	if err := repo.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, errors.Wrap(err, "querying unclaimed found items")
	}
	return items, nil
}

// MarkFoundItemClaimed relies on the DB's atomic update for the claim-once
// invariant; no application-level locking is involved.
func (repo *foundItemRepository) MarkFoundItemClaimed(ctx context.Context, id int) (item.FoundItem, error) {
	var it item.FoundItem
	const q = `UPDATE found_item SET claimed = TRUE, updated_at = $2 WHERE id = $1 RETURNING *`
	if err := repo.db.GetContext(ctx, &it, q, id, time.Now().UTC()); err != nil {
		return item.FoundItem{}, trapNoRowsErr(err, item.ErrNotFound, "marking found item claimed")
	}
	return it, nil
}
