package main

import (
	"github.com/vicsion901-rgb/onlyteaching/storage/database"
)

func (cli *commandLine) migrate(args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}
	return database.MigrationCommand(cli.db, cli.conf.Database.Engine, command)
}
