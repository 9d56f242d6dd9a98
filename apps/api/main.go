package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/vicsion901-rgb/onlyteaching/apps/api/echo"
	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
	"github.com/vicsion901-rgb/onlyteaching/core/ocr"
	"github.com/vicsion901-rgb/onlyteaching/core/prompt"
	"github.com/vicsion901-rgb/onlyteaching/core/schedule"
	"github.com/vicsion901-rgb/onlyteaching/core/student"
	"github.com/vicsion901-rgb/onlyteaching/core/xlsimport"
	logsvc "github.com/vicsion901-rgb/onlyteaching/services/logger"
	ocrsvc "github.com/vicsion901-rgb/onlyteaching/services/ocr"
	"github.com/vicsion901-rgb/onlyteaching/storage/database"
	"github.com/vicsion901-rgb/onlyteaching/storage/database/sqlxrepos"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	var logger core.Logger
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	logger.Enable(!conf.TestMode)

	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("failed to close DB", err)
		}
	}()

	// set up services
	studentSvc := student.NewService(sqlxrepos.NewStudentRepository(db), logger)
	scheduleSvc := schedule.NewService(sqlxrepos.NewScheduleRepository(db))
	commentRepo := sqlxrepos.NewCommentRepository(db)
	commentSvc := comment.NewService(commentRepo)
	generator := comment.NewGenerator(commentRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
	importer := xlsimport.NewImporter(studentSvc, logger)
	ocrSvc := ocr.NewService(ocrsvc.NewTesseractExtractor(), studentSvc)
	promptSvc := prompt.NewService()

	validate, translator := core.NewValidator()

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			Importer:    importer,
			StudentSvc:  studentSvc,
			OCRSvc:      ocrSvc,
			ScheduleSvc: scheduleSvc,
			CommentSvc:  commentSvc,
			Generator:   generator,
			PromptSvc:   promptSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Ping(db); err != nil {
		return nil, err
	}
	if err = database.Migrate(db, conf.Database.Engine); err != nil {
		return nil, err
	}
	return db, nil
}
