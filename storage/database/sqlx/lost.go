package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core/item"
)

type lostItemRepository struct {
	db *sqlx.DB
}

var _ item.LostRepository = (*lostItemRepository)(nil) // interface compliance check

func NewLostItemRepository(db *sqlx.DB) *lostItemRepository {
	return &lostItemRepository{db: db}
}

func (repo *lostItemRepository) CreateLostItem(ctx context.Context, it item.LostItem) (item.LostItem, error) {
	const q = `
		INSERT INTO lost_item (date_reported, item_type, item_color, location_lost, approx_lost_at,
		                       additional_description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := repo.db.QueryRowxContext(
		ctx, q,
		it.DateReported, it.ItemType, it.ItemColor, it.LocationLost, it.ApproxLostAt,
		it.AdditionalDescription, it.UserID, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return item.LostItem{}, errors.Wrap(err, "inserting lost item")
	}
	return it, nil
}

func (repo *lostItemRepository) QueryRecentLostItems(ctx context.Context, limit int) ([]item.LostItem, error) {
	items := make([]item.LostItem, 0, limit)
	const q = `SELECT * FROM lost_item ORDER BY created_at DESC, id DESC LIMIT $1`
	if err := repo.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, errors.Wrap(err, "querying recent lost items")
	}
	return items, nil
}

func (repo *lostItemRepository) QueryLostItemReports(ctx context.Context, limit int) ([]item.LostItemReport, error) {
	reports := make([]item.LostItemReport, 0, limit)
	const q = `
		SELECT li.*,
		       u.full_name        AS reporter_name,
		       u.college          AS reporter_college,
		       u.year_and_section AS reporter_year_and_section
		FROM lost_item li
		JOIN "user" u ON u.id = li.user_id
		ORDER BY li.created_at DESC, li.id DESC
		LIMIT $1`
	if err := repo.db.SelectContext(ctx, &reports, q, limit); err != nil {
		return nil, errors.Wrap(err, "querying lost item reports")
	}
	return reports, nil
}

func (repo *lostItemRepository) QueryLostItemsByUser(ctx context.Context, userID, limit int) ([]item.LostItem, error) {
	items := make([]item.LostItem, 0, limit)
	const q = `SELECT * FROM lost_item WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
	if err := repo.db.SelectContext(ctx, &items, q, userID, limit); err != nil {
		return nil, errors.Wrap(err, "querying lost items by user")
	}
	return items, nil
}
