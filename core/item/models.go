package item

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/tshims/potea/core"
)

// FoundItem is an item turned in at a station, logged by an admin.
// Claimed is a one-way flag: it starts false and only ever becomes true.
type FoundItem struct {
	ID               int         `db:"id" json:"id"`
	ItemType         string      `db:"item_type" json:"itemType"`
	ItemColor        string      `db:"item_color" json:"itemColor"`
	LocationFound    string      `db:"location_found" json:"locationFound"`
	DateTurnedIn     time.Time   `db:"date_turned_in" json:"dateTurnedIn"` // UTC
	FoundByName      string      `db:"found_by_name" json:"foundByName"`
	StationKept      string      `db:"station_kept" json:"stationKept"`
	AdditionalNotes  null.String `db:"additional_notes" json:"additionalNotes"`
	Claimed          bool        `db:"claimed" json:"claimed"`
	CreatedByAdminID int         `db:"created_by_admin_id" json:"createdByAdminId"`
	CreatedAt        time.Time   `db:"created_at" json:"createdAt"` // UTC
	UpdatedAt        time.Time   `db:"updated_at" json:"updatedAt"` // UTC
}

// NewFoundItem contains information needed to log a FoundItem.
type NewFoundItem struct {
	ItemType         string `json:"itemType" validate:"required"`
	ItemColor        string `json:"itemColor" validate:"required"`
	LocationFound    string `json:"locationFound" validate:"required"`
	FoundByName      string `json:"foundByName" validate:"required"`
	StationKept      string `json:"stationKept" validate:"required"`
	AdditionalNotes  string `json:"additionalNotes"`
	CreatedByAdminID int    `json:"createdByAdminId" validate:"required"`
}

func (nf *NewFoundItem) Validate(validate *validator.Validate) error {
	nf.ItemType = core.CleanString(nf.ItemType)
	nf.ItemColor = core.CleanString(nf.ItemColor)
	nf.LocationFound = core.CleanString(nf.LocationFound)
	nf.FoundByName = core.CleanString(nf.FoundByName)
	nf.StationKept = core.CleanString(nf.StationKept)
	nf.AdditionalNotes = core.CleanString(nf.AdditionalNotes)
	return validate.Struct(nf)
}

// LostItem is an item a user reported missing.
type LostItem struct {
	ID                    int         `db:"id" json:"id"`
	DateReported          time.Time   `db:"date_reported" json:"dateReported"` // UTC
	ItemType              string      `db:"item_type" json:"itemType"`
	ItemColor             string      `db:"item_color" json:"itemColor"`
	LocationLost          null.String `db:"location_lost" json:"locationLost"`
	ApproxLostAt          null.Time   `db:"approx_lost_at" json:"approxLostAt"`
	AdditionalDescription null.String `db:"additional_description" json:"additionalDescription"`
	UserID                int         `db:"user_id" json:"userId"`
	CreatedAt             time.Time   `db:"created_at" json:"createdAt"` // UTC
	UpdatedAt             time.Time   `db:"updated_at" json:"updatedAt"` // UTC
}

// NewLostItem contains information needed to report a LostItem.
type NewLostItem struct {
	UserID                int       `json:"userId" validate:"required"`
	ItemType              string    `json:"itemType" validate:"required"`
	ItemColor             string    `json:"itemColor" validate:"required"`
	LocationLost          string    `json:"locationLost"`
	ApproxLostAt          null.Time `json:"approxLostAt"`
	AdditionalDescription string    `json:"additionalDescription"`
}

func (nl *NewLostItem) Validate(validate *validator.Validate) error {
	nl.ItemType = core.CleanString(nl.ItemType)
	nl.ItemColor = core.CleanString(nl.ItemColor)
	nl.LocationLost = core.CleanString(nl.LocationLost)
	nl.AdditionalDescription = core.CleanString(nl.AdditionalDescription)
	return validate.Struct(nl)
}

// LostItemReport is a LostItem joined with its reporter's details,
// for the admin dashboard.
type LostItemReport struct {
	LostItem
	ReporterName           string `db:"reporter_name" json:"reporterName"`
	ReporterCollege        string `db:"reporter_college" json:"reporterCollege"`
	ReporterYearAndSection string `db:"reporter_year_and_section" json:"reporterYearAndSection"`
}
