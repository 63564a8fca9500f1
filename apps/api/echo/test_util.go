package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/tshims/potea/core"
	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/item"
	"github.com/tshims/potea/core/user"
	emailsvc "github.com/tshims/potea/services/email"
	logsvc "github.com/tshims/potea/services/logger"
	dummydb "github.com/tshims/potea/storage/database/dummy"
)

type testEnv struct {
	conf   *core.Config
	server Server

	userRepo  user.Repository
	adminRepo admin.Repository
	foundRepo item.FoundRepository
	lostRepo  item.LostRepository
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	conf := &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Potea",
		SecretKey:        "test-secret",
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "Potea", Address: "noreply@localhost"},
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
	}

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	db := dummydb.Open()
	userRepo := dummydb.NewUserRepository(db)
	adminRepo := dummydb.NewAdminRepository(db)
	foundRepo := dummydb.NewFoundItemRepository(db)
	lostRepo := dummydb.NewLostItemRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	server := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)),
		Validate:       validate,
		Translator:     translator,
		UserSvc:        user.NewService(userRepo, mailSvc, conf),
		AdminSvc:       admin.NewService(adminRepo),
		FoundSvc:       item.NewFoundService(foundRepo),
		LostSvc:        item.NewLostService(lostRepo),
		DisableReqLogs: true,
	})

	return &testEnv{
		conf:      conf,
		server:    server,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		foundRepo: foundRepo,
		lostRepo:  lostRepo,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func (env *testEnv) do(req *http.Request, rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	env.server.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) userToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(env.conf, GetUserClaims(env.conf, usr))
	if err != nil {
		t.Fatalf("userToken() failed: %v", err)
	}
	return token
}

func (env *testEnv) adminToken(t *testing.T, adm admin.Admin) string {
	t.Helper()
	token, err := GenerateToken(env.conf, GetAdminClaims(env.conf, adm))
	if err != nil {
		t.Fatalf("adminToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody() failed: %v; body: %s", err, rec.Body.String())
	}
}
