package item

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

const (
	// recentListLimit caps the public lost-items listing.
	recentListLimit = 10
	// reportListLimit caps the admin dashboard and per-user listings.
	reportListLimit = 20
)

type (
	LostRepository interface {
		CreateLostItem(ctx context.Context, it LostItem) (LostItem, error)
		// QueryRecentLostItems returns the latest reports, newest first.
		QueryRecentLostItems(ctx context.Context, limit int) ([]LostItem, error)
		// QueryLostItemReports joins each report with its reporter's details.
		QueryLostItemReports(ctx context.Context, limit int) ([]LostItemReport, error)
		QueryLostItemsByUser(ctx context.Context, userID, limit int) ([]LostItem, error)
	}

	LostService struct {
		repo LostRepository
	}
)

func NewLostService(repo LostRepository) *LostService {
	return &LostService{repo: repo}
}

// Report persists a new LostItem for its owning user.
func (svc *LostService) Report(ctx context.Context, nl NewLostItem) (LostItem, error) {
	now := time.Now().UTC()
	it := LostItem{
		DateReported:          now,
		ItemType:              nl.ItemType,
		ItemColor:             nl.ItemColor,
		LocationLost:          null.NewString(nl.LocationLost, nl.LocationLost != ""),
		ApproxLostAt:          nl.ApproxLostAt,
		AdditionalDescription: null.NewString(nl.AdditionalDescription, nl.AdditionalDescription != ""),
		UserID:                nl.UserID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	it, err := svc.repo.CreateLostItem(ctx, it)
	if err != nil {
		return LostItem{}, errors.Wrap(err, "creating lost item")
	}
	return it, nil
}

func (svc *LostService) ListRecent(ctx context.Context) ([]LostItem, error) {
	return svc.repo.QueryRecentLostItems(ctx, recentListLimit)
}

func (svc *LostService) ListReports(ctx context.Context) ([]LostItemReport, error) {
	return svc.repo.QueryLostItemReports(ctx, reportListLimit)
}

func (svc *LostService) ListForUser(ctx context.Context, userID int) ([]LostItem, error) {
	return svc.repo.QueryLostItemsByUser(ctx, userID, reportListLimit)
}
