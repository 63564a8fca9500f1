package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/item"
	"github.com/tshims/potea/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, college, section, pwd string,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		FullName:       name,
		College:        college,
		YearAndSection: section,
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateAdmin(
	t *testing.T,
	repo admin.Repository,
	name, uname, pwd string,
) admin.Admin {
	t.Helper()

	now := time.Now().UTC()
	adm := admin.Admin{
		FullName:  name,
		Username:  uname,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pwd != "" {
		if err := adm.SetPassword(pwd); err != nil {
			t.Fatalf("CreateAdmin() failed: %v", err)
		}
	}
	adm, err := repo.CreateAdmin(context.Background(), adm)
	if err != nil {
		t.Fatalf("CreateAdmin() failed: %v", err)
	}
	return adm
}

func CreateFoundItem(
	t *testing.T,
	repo item.FoundRepository,
	adminID int,
	itemType string,
	claimed bool,
	createdAt ...time.Time,
) item.FoundItem {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	it := item.FoundItem{
		ItemType:         itemType,
		ItemColor:        "black",
		LocationFound:    "main hall",
		DateTurnedIn:     tstamp,
		FoundByName:      "A. Passerby",
		StationKept:      "station 1",
		Claimed:          claimed,
		CreatedByAdminID: adminID,
		CreatedAt:        tstamp,
		UpdatedAt:        tstamp,
	}
	it, err := repo.CreateFoundItem(context.Background(), it)
	if err != nil {
		t.Fatalf("CreateFoundItem() failed: %v", err)
	}
	return it
}

func CreateLostItem(
	t *testing.T,
	repo item.LostRepository,
	userID int,
	itemType string,
	createdAt ...time.Time,
) item.LostItem {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	it := item.LostItem{
		DateReported: tstamp,
		ItemType:     itemType,
		ItemColor:    "blue",
		LocationLost: null.StringFrom("library"),
		UserID:       userID,
		CreatedAt:    tstamp,
		UpdatedAt:    tstamp,
	}
	it, err := repo.CreateLostItem(context.Background(), it)
	if err != nil {
		t.Fatalf("CreateLostItem() failed: %v", err)
	}
	return it
}
