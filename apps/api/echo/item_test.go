package echoapi

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/item"
	"github.com/tshims/potea/tests"
)

func TestItemApi_createFoundItem(t *testing.T) {
	env := setup(t)
	path := "/found-items"

	adm := testutil.CreateAdmin(t, env.adminRepo, "Sam Keeper", "skeeper", "s3cretpwd")
	usr := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")

	admToken := env.adminToken(t, adm)
	usrToken := env.userToken(t, usr)
	ghostToken := env.adminToken(t, admin.Admin{ID: 999, FullName: "Ghost"})

	newItem := func(adminID int) item.NewFoundItem {
		return item.NewFoundItem{
			ItemType:         "umbrella",
			ItemColor:        "red",
			LocationFound:    "cafeteria",
			FoundByName:      "A. Passerby",
			StationKept:      "station 2",
			AdditionalNotes:  "slightly torn",
			CreatedByAdminID: adminID,
		}
	}

	tests := []struct {
		name       string
		token      string
		data       item.NewFoundItem
		wantCode   int
		wantFields []string
	}{
		{
			name:     "no token",
			data:     newItem(adm.ID),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "user token",
			token:    usrToken,
			data:     newItem(adm.ID),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "token admin mismatch",
			token:    admToken,
			data:     newItem(adm.ID + 1),
			wantCode: http.StatusForbidden,
		},
		{
			name:       "unknown admin id",
			token:      ghostToken,
			data:       newItem(999),
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"createdByAdminId"},
		},
		{
			name:       "missing fields",
			token:      admToken,
			data:       item.NewFoundItem{ItemType: "umbrella", CreatedByAdminID: adm.ID},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"itemColor", "locationFound", "foundByName", "stationKept"},
		},
		{
			name:     "ok",
			token:    admToken,
			data:     newItem(adm.ID),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, path, tt.token, marshallObj(t, tt.data))
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if len(tt.wantFields) > 0 {
				var fldErrs map[string]string
				decodeBody(t, rec, &fldErrs)
				for _, fld := range tt.wantFields {
					assert.Contains(t, fldErrs, fld)
				}
				return
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var it item.FoundItem
			decodeBody(t, rec, &it)
			assert.True(t, it.ID > 0)
			assert.Equal(t, tt.data.ItemType, it.ItemType)
			assert.Equal(t, tt.data.AdditionalNotes, it.AdditionalNotes.String)
			assert.Equal(t, adm.ID, it.CreatedByAdminID)
			assert.False(t, it.Claimed)
			assert.False(t, it.DateTurnedIn.IsZero())
		})
	}
}

func TestItemApi_missingToken(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodPost, "/lost-items", marshallObj(t, item.NewLostItem{}))
	env.do(req, rec)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body httpErr
	decodeBody(t, rec, &body)
	assert.Equal(t, "missing or malformed jwt", body.Error)
}

func TestItemApi_listFoundItems(t *testing.T) {
	env := setup(t)
	path := "/found-items"

	req, rec := newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	adm := testutil.CreateAdmin(t, env.adminRepo, "Sam Keeper", "skeeper", "s3cretpwd")
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		testutil.CreateFoundItem(t, env.foundRepo, adm.ID, fmt.Sprintf("item %d", i), false, base.Add(time.Duration(i)*time.Minute))
	}
	claimed := testutil.CreateFoundItem(t, env.foundRepo, adm.ID, "claimed item", true, base.Add(time.Hour))

	req, rec = newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []item.FoundItem
	decodeBody(t, rec, &items)
	require.Len(t, items, 10)
	assert.Equal(t, "item 11", items[0].ItemType)
	for i, it := range items {
		assert.False(t, it.Claimed)
		assert.NotEqual(t, claimed.ID, it.ID)
		if i > 0 {
			assert.False(t, items[i-1].CreatedAt.Before(it.CreatedAt))
		}
	}
}

func TestItemApi_claimFoundItem(t *testing.T) {
	env := setup(t)

	adm := testutil.CreateAdmin(t, env.adminRepo, "Sam Keeper", "skeeper", "s3cretpwd")
	other := testutil.CreateAdmin(t, env.adminRepo, "Pat Other", "pother", "s3cretpwd")
	it := testutil.CreateFoundItem(t, env.foundRepo, adm.ID, "umbrella", false)

	admToken := env.adminToken(t, adm)
	otherToken := env.adminToken(t, other)

	path := func(id interface{}) string { return fmt.Sprintf("/found-items/%v/claim", id) }

	tests := []struct {
		name     string
		token    string
		path     string
		wantCode int
	}{
		{name: "no token", path: path(it.ID), wantCode: http.StatusUnauthorized},
		{name: "malformed id", token: admToken, path: path("nope"), wantCode: http.StatusNotFound},
		{name: "unknown id", token: admToken, path: path(12345), wantCode: http.StatusNotFound},
		{name: "not the logging admin", token: otherToken, path: path(it.ID), wantCode: http.StatusForbidden},
		{name: "ok", token: admToken, path: path(it.ID), wantCode: http.StatusOK},
		{name: "claim again", token: admToken, path: path(it.ID), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, tt.path, tt.token)
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				return
			}
			var got item.FoundItem
			decodeBody(t, rec, &got)
			assert.Equal(t, it.ID, got.ID)
			assert.True(t, got.Claimed)
		})
	}
}

func TestItemApi_createLostItem(t *testing.T) {
	env := setup(t)
	path := "/lost-items"

	usr := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")
	adm := testutil.CreateAdmin(t, env.adminRepo, "Sam Keeper", "skeeper", "s3cretpwd")

	usrToken := env.userToken(t, usr)
	admToken := env.adminToken(t, adm)

	newItem := func(userID int) item.NewLostItem {
		return item.NewLostItem{
			UserID:                userID,
			ItemType:              "wallet",
			ItemColor:             "brown",
			LocationLost:          "gym",
			AdditionalDescription: "has a sticker on it",
		}
	}

	tests := []struct {
		name       string
		token      string
		data       item.NewLostItem
		wantCode   int
		wantFields []string
	}{
		{
			name:     "no token",
			data:     newItem(usr.ID),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "admin token",
			token:    admToken,
			data:     newItem(usr.ID),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "token user mismatch",
			token:    usrToken,
			data:     newItem(usr.ID + 1),
			wantCode: http.StatusForbidden,
		},
		{
			name:       "missing fields",
			token:      usrToken,
			data:       item.NewLostItem{UserID: usr.ID},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"itemType", "itemColor"},
		},
		{
			name:     "ok",
			token:    usrToken,
			data:     newItem(usr.ID),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, path, tt.token, marshallObj(t, tt.data))
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if len(tt.wantFields) > 0 {
				var fldErrs map[string]string
				decodeBody(t, rec, &fldErrs)
				for _, fld := range tt.wantFields {
					assert.Contains(t, fldErrs, fld)
				}
				return
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var it item.LostItem
			decodeBody(t, rec, &it)
			assert.True(t, it.ID > 0)
			assert.Equal(t, usr.ID, it.UserID)
			assert.Equal(t, tt.data.ItemType, it.ItemType)
			assert.Equal(t, tt.data.LocationLost, it.LocationLost.String)
			assert.False(t, it.DateReported.IsZero())
		})
	}
}

func TestItemApi_listLostItems(t *testing.T) {
	env := setup(t)
	path := "/lost-items"

	req, rec := newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	usr := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		testutil.CreateLostItem(t, env.lostRepo, usr.ID, fmt.Sprintf("item %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	req, rec = newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []item.LostItem
	decodeBody(t, rec, &items)
	require.Len(t, items, 10)
	assert.Equal(t, "item 11", items[0].ItemType)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i-1].CreatedAt.Before(items[i].CreatedAt))
	}
}

func TestItemApi_listLostItemReports(t *testing.T) {
	env := setup(t)
	path := "/admin-lost-items"

	jane := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")
	john := testutil.CreateUser(t, env.userRepo, "John Roe", "College of Science", "2-B", "s3cretpwd")
	base := time.Now().UTC().Add(-time.Hour)
	testutil.CreateLostItem(t, env.lostRepo, jane.ID, "wallet", base)
	testutil.CreateLostItem(t, env.lostRepo, john.ID, "phone", base.Add(time.Minute))

	req, rec := newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)

	var reports []item.LostItemReport
	decodeBody(t, rec, &reports)
	require.Len(t, reports, 2)

	// newest first, each joined with its reporter
	assert.Equal(t, "phone", reports[0].ItemType)
	assert.Equal(t, john.FullName, reports[0].ReporterName)
	assert.Equal(t, john.College, reports[0].ReporterCollege)
	assert.Equal(t, john.YearAndSection, reports[0].ReporterYearAndSection)
	assert.Equal(t, "wallet", reports[1].ItemType)
	assert.Equal(t, jane.FullName, reports[1].ReporterName)

	// the dashboard listing is capped at 20
	for i := 0; i < 25; i++ {
		testutil.CreateLostItem(t, env.lostRepo, jane.ID, fmt.Sprintf("item %d", i))
	}
	req, rec = newRequest(http.MethodGet, path)
	env.do(req, rec)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &reports)
	assert.Len(t, reports, 20)
}

func TestItemApi_listMyLostItems(t *testing.T) {
	env := setup(t)
	path := "/my-lost-items"

	jane := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")
	john := testutil.CreateUser(t, env.userRepo, "John Roe", "College of Science", "2-B", "s3cretpwd")
	testutil.CreateLostItem(t, env.lostRepo, jane.ID, "wallet")
	testutil.CreateLostItem(t, env.lostRepo, jane.ID, "phone")
	testutil.CreateLostItem(t, env.lostRepo, john.ID, "keys")

	t.Run("no userId", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, path)
		env.do(req, rec)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("malformed userId", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, path+"?userId=nope")
		env.do(req, rec)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		decodeBody(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "userId")
	})

	t.Run("filters by user", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, fmt.Sprintf("%s?userId=%d", path, jane.ID))
		env.do(req, rec)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []item.LostItem
		decodeBody(t, rec, &items)
		require.Len(t, items, 2)
		for _, it := range items {
			assert.Equal(t, jane.ID, it.UserID)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, path+"?userId=12345")
		env.do(req, rec)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("capped at 20", func(t *testing.T) {
		for i := 0; i < 25; i++ {
			testutil.CreateLostItem(t, env.lostRepo, john.ID, fmt.Sprintf("item %d", i))
		}
		req, rec := newRequest(http.MethodGet, fmt.Sprintf("%s?userId=%d", path, john.ID))
		env.do(req, rec)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []item.LostItem
		decodeBody(t, rec, &items)
		assert.Len(t, items, 20)
	})
}
