package main

import (
	"context"
	"database/sql"
	"io"
	"log"
	"net/mail"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tshims/potea/core"
	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/user"
	emailsvc "github.com/tshims/potea/services/email"
	dummydb "github.com/tshims/potea/storage/database/dummy"
)

type cliTest struct {
	cli       *commandLine
	adminRepo admin.Repository
	userRepo  user.Repository
}

func newCLITest(t *testing.T) *cliTest {
	t.Helper()

	logger = log.New(io.Discard, "", 0)

	conf := &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Potea",
		DefaultFromEmail: mail.Address{Name: "Potea", Address: "noreply@localhost"},
	}

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	db := dummydb.Open()
	adminRepo := dummydb.NewAdminRepository(db)
	userRepo := dummydb.NewUserRepository(db)

	return &cliTest{
		cli: &commandLine{
			db:       &sqlx.DB{},
			validate: validate,
			admSvc:   admin.NewService(adminRepo),
			usrSvc:   user.NewService(userRepo, emailsvc.NewConsoleServiceMock(conf), conf),
		},
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func TestCommandLine_run_help(t *testing.T) {
	ct := newCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: []string{"admin"}},
		{name: "unknown command", args: []string{"admin", "frobnicate"}},
		{name: "createadmin missing flags", args: []string{"admin", "createadmin", "-name", "Sam Keeper"}},
		{name: "createuser missing flags", args: []string{"admin", "createuser", "-name", "Jane Doe"}},
		{name: "migrate missing command", args: []string{"admin", "migrate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, errHelp, ct.cli.run(tt.args))
		})
	}
}

func TestCommandLine_createAdmin(t *testing.T) {
	ct := newCLITest(t)
	mockPassword(t, "s3cretpwd")

	args := []string{"admin", "createadmin", "-name", "Sam Keeper", "-username", "skeeper"}
	require.NoError(t, ct.cli.run(args))

	adm, err := ct.adminRepo.GetAdminByUsername(context.Background(), "skeeper")
	require.NoError(t, err)
	assert.Equal(t, "Sam Keeper", adm.FullName)
	assert.NoError(t, adm.CheckPassword("s3cretpwd"))

	// usernames are unique
	err = ct.cli.run(args)
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "username", vErr.Fields[0].Field)
}

func TestCommandLine_createAdmin_emptyPassword(t *testing.T) {
	ct := newCLITest(t)
	mockPassword(t, "")

	args := []string{"admin", "createadmin", "-name", "Sam Keeper", "-username", "skeeper"}
	assert.Equal(t, errHelp, ct.cli.run(args))
}

func TestCommandLine_createUser(t *testing.T) {
	ct := newCLITest(t)
	mockPassword(t, "s3cretpwd")

	args := []string{"admin", "createuser", "-name", "Jane Doe", "-college", "College of Engineering", "-section", "3-A"}
	require.NoError(t, ct.cli.run(args))

	usr, err := ct.userRepo.GetUserByFullName(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "College of Engineering", usr.College)
	assert.Equal(t, "3-A", usr.YearAndSection)
	assert.NoError(t, usr.CheckPassword("s3cretpwd"))
}

func TestCommandLine_migrate(t *testing.T) {
	ct := newCLITest(t)

	var gotCommand string
	var gotArgs []string
	orig := gooseRunFunc
	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		gotCommand = command
		gotArgs = args
		return nil
	}
	t.Cleanup(func() { gooseRunFunc = orig })

	require.NoError(t, ct.cli.run([]string{"admin", "migrate", "down-to", "1"}))
	assert.Equal(t, "down-to", gotCommand)
	assert.Equal(t, []string{"1"}, gotArgs)
}
