package main

import (
	"github.com/pressly/goose/v3"

	"github.com/tshims/potea/storage/database"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if args[0] == "up" {
		// the common path also embeds the migration files
		return database.Migrate(cli.db.DB)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, "storage/database/migrations", arguments...)
}
