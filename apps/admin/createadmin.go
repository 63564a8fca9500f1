package main

import (
	"context"

	"github.com/tshims/potea/core/admin"
)

// createAdmin creates an admin.Admin. There is no public registration
// route for admins; this is the only way in.
func (cli *commandLine) createAdmin(name, uname, pwd string) error {
	na := admin.NewAdmin{
		FullName: name,
		Username: uname,
		Password: pwd,
	}
	if err := na.Validate(cli.validate); err != nil {
		return err
	}
	adm, err := cli.admSvc.Create(context.Background(), na)
	if err != nil {
		return err
	}
	logger.Printf("admin %q created with id %d", adm.Username, adm.ID)
	return nil
}
