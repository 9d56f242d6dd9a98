package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf       *core.Config
	db         *sqlx.DB
	commentSvc *comment.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate [up|down|status]       - run database migrations")
	fmt.Println("  seedcomments -file FILE        - load the keyword bank from a spreadsheet")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCommentsCmd := flag.NewFlagSet("seedcomments", flag.ExitOnError)
	seedCommentsFile := seedCommentsCmd.String("file", "", "Spreadsheet with category, subcategory, attribute, content columns.")

	switch args[1] {
	case "migrate":
		return cli.migrate(args[2:])
	case "seedcomments":
		if err := seedCommentsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedCommentsFile == "" {
			seedCommentsCmd.Usage()
			return errHelp
		}
		return cli.seedComments(*seedCommentsFile)
	default:
		cli.printUsage()
		return errHelp
	}
}
