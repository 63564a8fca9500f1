package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshims/potea/core/user"
	emailsvc "github.com/tshims/potea/services/email"
	"github.com/tshims/potea/tests"
)

func TestAccountApi_register(t *testing.T) {
	env := setup(t)
	path := "/register"

	tests := []struct {
		name       string
		data       user.NewUser
		wantCode   int
		wantFields []string
	}{
		{
			name:       "empty body",
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"fullName", "college", "yearAndSection", "password"},
		},
		{
			name: "missing password",
			data: user.NewUser{
				FullName:       "Jane Doe",
				College:        "College of Engineering",
				YearAndSection: "3-A",
			},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"password"},
		},
		{
			name: "invalid email",
			data: user.NewUser{
				FullName:       "Jane Doe",
				College:        "College of Engineering",
				YearAndSection: "3-A",
				Email:          "not-an-email",
				Password:       "s3cretpwd",
			},
			wantCode:   http.StatusBadRequest,
			wantFields: []string{"email"},
		},
		{
			name: "ok",
			data: user.NewUser{
				FullName:       "Jane Doe",
				College:        "College of Engineering",
				YearAndSection: "3-A",
				Email:          "jane@example.com",
				Password:       "s3cretpwd",
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "ok without email",
			data: user.NewUser{
				FullName:       "John Roe",
				College:        "College of Science",
				YearAndSection: "2-B",
				Password:       "s3cretpwd",
			},
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent := len(emailsvc.SentMessages)
			req, rec := newRequest(http.MethodPost, path, marshallObj(t, tt.data))
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode == http.StatusBadRequest {
				var fldErrs map[string]string
				decodeBody(t, rec, &fldErrs)
				for _, fld := range tt.wantFields {
					assert.Contains(t, fldErrs, fld)
				}
				return
			}

			var usr user.User
			decodeBody(t, rec, &usr)
			assert.True(t, usr.ID > 0)
			assert.Equal(t, tt.data.FullName, usr.FullName)
			assert.Equal(t, tt.data.College, usr.College)
			assert.Equal(t, tt.data.YearAndSection, usr.YearAndSection)
			assert.Equal(t, tt.data.Email, usr.Email.String)

			// the hash never leaves the server
			assert.NotContains(t, rec.Body.String(), "passwordHash")
			assert.Empty(t, usr.PasswordHash)

			stored, err := env.userRepo.GetUserByID(context.Background(), usr.ID)
			require.NoError(t, err)
			assert.NoError(t, stored.CheckPassword(tt.data.Password))

			// a welcome email goes out iff an email address was given
			if tt.data.Email != "" {
				require.Greater(t, len(emailsvc.SentMessages), sent)
				welcome := emailsvc.SentMessages[len(emailsvc.SentMessages)-1]
				require.NotEmpty(t, welcome.To)
				assert.Equal(t, tt.data.Email, welcome.To[0].Address)
				assert.Contains(t, welcome.Subject, "Welcome")
			} else {
				assert.Len(t, emailsvc.SentMessages, sent)
			}
		})
	}
}

func TestAccountApi_login(t *testing.T) {
	env := setup(t)
	path := "/login"

	usr := testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")

	tests := []struct {
		name     string
		data     LoginRequest
		wantCode int
	}{
		{
			name:     "missing fields",
			data:     LoginRequest{FullName: "Jane Doe"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown name",
			data:     LoginRequest{FullName: "Nobody Here", Password: "s3cretpwd"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			data:     LoginRequest{FullName: "Jane Doe", Password: "letmein"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "ok",
			data:     LoginRequest{FullName: "Jane Doe", Password: "s3cretpwd"},
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, path, marshallObj(t, tt.data))
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				return
			}
			var resp UserLoginResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, usr.ID, resp.ID)
			assert.Equal(t, RoleUser, resp.Role)
			assert.NotEmpty(t, resp.Token)
			assert.NotContains(t, rec.Body.String(), "passwordHash")
		})
	}
}

// Unknown names and wrong passwords must produce the same response,
// so the login route cannot be used to probe for accounts.
func TestAccountApi_loginIndistinguishableFailures(t *testing.T) {
	env := setup(t)
	path := "/login"

	testutil.CreateUser(t, env.userRepo, "Jane Doe", "College of Engineering", "3-A", "s3cretpwd")

	req, rec := newRequest(http.MethodPost, path,
		marshallObj(t, LoginRequest{FullName: "Nobody Here", Password: "s3cretpwd"}))
	env.do(req, rec)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req2, rec2 := newRequest(http.MethodPost, path,
		marshallObj(t, LoginRequest{FullName: "Jane Doe", Password: "letmein"}))
	env.do(req2, rec2)
	require.Equal(t, http.StatusUnauthorized, rec2.Code)

	assert.Equal(t, rec.Body.String(), rec2.Body.String())
}

func TestAccountApi_adminLogin(t *testing.T) {
	env := setup(t)
	path := "/admin-login"

	adm := testutil.CreateAdmin(t, env.adminRepo, "Sam Keeper", "skeeper", "s3cretpwd")

	tests := []struct {
		name     string
		data     AdminLoginRequest
		wantCode int
	}{
		{
			name:     "missing fields",
			data:     AdminLoginRequest{Username: "skeeper"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown username",
			data:     AdminLoginRequest{Username: "nobody", Password: "s3cretpwd"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			data:     AdminLoginRequest{Username: "skeeper", Password: "letmein"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "ok",
			data:     AdminLoginRequest{Username: "skeeper", Password: "s3cretpwd"},
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, path, marshallObj(t, tt.data))
			env.do(req, rec)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				return
			}
			var resp AdminLoginResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, adm.ID, resp.ID)
			assert.Equal(t, RoleAdmin, resp.Role)
			assert.NotEmpty(t, resp.Token)
			assert.NotContains(t, rec.Body.String(), "passwordHash")
		})
	}
}
