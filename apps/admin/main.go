package main

import (
	"log"
	"os"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
	"github.com/vicsion901-rgb/onlyteaching/storage/database"
	"github.com/vicsion901-rgb/onlyteaching/storage/database/sqlxrepos"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db))

	// start CLI
	cli := commandLine{
		conf:       conf,
		db:         db,
		commentSvc: comment.NewService(sqlxrepos.NewCommentRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
