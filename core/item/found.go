package item

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var ErrNotFound = errors.New("item not found")

// unclaimedListLimit caps the public found-items listing.
const unclaimedListLimit = 10

type (
	FoundRepository interface {
		CreateFoundItem(ctx context.Context, it FoundItem) (FoundItem, error)
		GetFoundItemByID(ctx context.Context, id int) (FoundItem, error)
		// QueryUnclaimedFoundItems returns unclaimed items, newest first.
		QueryUnclaimedFoundItems(ctx context.Context, limit int) ([]FoundItem, error)
		// MarkFoundItemClaimed sets claimed = true in a single statement;
		// re-running it on a claimed item is a no-op.
		MarkFoundItemClaimed(ctx context.Context, id int) (FoundItem, error)
	}

	FoundService struct {
		repo FoundRepository
	}
)

func NewFoundService(repo FoundRepository) *FoundService {
	return &FoundService{repo: repo}
}

// Report persists a new FoundItem with claimed = false.
func (svc *FoundService) Report(ctx context.Context, nf NewFoundItem) (FoundItem, error) {
	now := time.Now().UTC()
	it := FoundItem{
		ItemType:         nf.ItemType,
		ItemColor:        nf.ItemColor,
		LocationFound:    nf.LocationFound,
		DateTurnedIn:     now,
		FoundByName:      nf.FoundByName,
		StationKept:      nf.StationKept,
		AdditionalNotes:  null.NewString(nf.AdditionalNotes, nf.AdditionalNotes != ""),
		CreatedByAdminID: nf.CreatedByAdminID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	it, err := svc.repo.CreateFoundItem(ctx, it)
	if err != nil {
		return FoundItem{}, errors.Wrap(err, "creating found item")
	}
	return it, nil
}

func (svc *FoundService) GetByID(ctx context.Context, id int) (FoundItem, error) {
	return svc.repo.GetFoundItemByID(ctx, id)
}

func (svc *FoundService) ListUnclaimed(ctx context.Context) ([]FoundItem, error) {
	return svc.repo.QueryUnclaimedFoundItems(ctx, unclaimedListLimit)
}

// Claim marks the item claimed. Claiming an already-claimed item is
// idempotent: the record comes back unchanged with claimed = true.
func (svc *FoundService) Claim(ctx context.Context, id int) (FoundItem, error) {
	return svc.repo.MarkFoundItemClaimed(ctx, id)
}
