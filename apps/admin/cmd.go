package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db       *sqlx.DB
	validate *validator.Validate
	admSvc   *admin.Service
	usrSvc   *user.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createadmin -name NAME -username USERNAME - create an admin account")
	fmt.Println("  createuser -name NAME -college COLLEGE -section YEAR_AND_SECTION - create a user account")
	fmt.Println("  migrate COMMAND [args] - run a goose migration command (up, down, status, ...)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	createAdminCmd := flag.NewFlagSet("createadmin", flag.ExitOnError)
	createAdminName := createAdminCmd.String("name", "", "The admin's full name.")
	createAdminUname := createAdminCmd.String("username", "", "The admin's username. The password will be prompted next.")

	createUserCmd := flag.NewFlagSet("createuser", flag.ExitOnError)
	createUserName := createUserCmd.String("name", "", "The user's full name. The password will be prompted next.")
	createUserCollege := createUserCmd.String("college", "", "The user's college.")
	createUserSection := createUserCmd.String("section", "", "The user's year and section.")

	switch args[1] {
	case "createadmin":
		if err := createAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createAdminName == "" || *createAdminUname == "" {
			createAdminCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(createAdminCmd)
		if err != nil {
			return err
		}
		return cli.createAdmin(*createAdminName, *createAdminUname, pwd)
	case "createuser":
		if err := createUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createUserName == "" || *createUserCollege == "" || *createUserSection == "" {
			createUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(createUserCmd)
		if err != nil {
			return err
		}
		return cli.createUser(*createUserName, *createUserCollege, *createUserSection, pwd)
	case "migrate":
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword(cmd *flag.FlagSet) (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		cmd.Usage()
		return "", errHelp
	}
	return string(pwd), nil
}
