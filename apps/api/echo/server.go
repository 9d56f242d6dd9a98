package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
	"github.com/vicsion901-rgb/onlyteaching/core/ocr"
	"github.com/vicsion901-rgb/onlyteaching/core/prompt"
	"github.com/vicsion901-rgb/onlyteaching/core/schedule"
	"github.com/vicsion901-rgb/onlyteaching/core/student"
	"github.com/vicsion901-rgb/onlyteaching/core/xlsimport"
)

type (
	ServerDeps struct {
		Conf        *core.Config
		Logger      core.Logger
		Importer    *xlsimport.Importer
		StudentSvc  *student.Service
		OCRSvc      *ocr.Service
		ScheduleSvc *schedule.Service
		CommentSvc  *comment.Service
		Generator   *comment.Generator
		PromptSvc   *prompt.Service
		Validate    *validator.Validate
		Translator  ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	registerImportAPI(s.app, s.deps.Importer, s.deps.StudentSvc, s.deps.OCRSvc)
	registerScheduleAPI(s.app, s.deps.ScheduleSvc, s.deps.Validate)
	registerCommentAPI(s.app, s.deps.CommentSvc, s.deps.Generator, s.deps.Validate)
	registerPromptAPI(s.app, s.deps.PromptSvc)
}

func (s *server) Start() {
	s.errs <- s.app.Start(s.deps.Conf.Server.Addr)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown sends a SIGTERM down the shutdown channel on unrecoverable errors.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to OnlyTeaching API!")
}
