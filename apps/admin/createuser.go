package main

import (
	"context"

	"github.com/tshims/potea/core/user"
)

// createUser seeds a user.User account, mostly useful for demos and QA.
func (cli *commandLine) createUser(name, college, section, pwd string) error {
	nu := user.NewUser{
		FullName:       name,
		College:        college,
		YearAndSection: section,
		Password:       pwd,
	}
	if err := nu.Validate(cli.validate); err != nil {
		return err
	}
	usr, err := cli.usrSvc.Register(context.Background(), nu)
	if err != nil {
		return err
	}
	logger.Printf("user %q created with id %d", usr.FullName, usr.ID)
	return nil
}
