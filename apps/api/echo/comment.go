package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
)

type commentApi struct {
	svc       *comment.Service
	generator *comment.Generator
	validate  *validator.Validate
}

func registerCommentAPI(e *echo.Echo, svc *comment.Service, generator *comment.Generator, validate *validator.Validate) {
	api := commentApi{
		svc:       svc,
		generator: generator,
		validate:  validate,
	}

	cg := e.Group("/student-record-comments")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/generate", api.generate)
	cg.GET("/:id", api.retrieve)
	cg.PATCH("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *commentApi) create(ctx echo.Context) error {
	var data comment.NewComment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cmt, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating comment")
	}
	return ctx.JSON(http.StatusCreated, cmt)
}

func (api *commentApi) query(ctx echo.Context) error {
	cmts, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying comments")
	}
	if cmts == nil {
		cmts = []comment.Comment{}
	}
	return ctx.JSON(http.StatusOK, cmts)
}

func (api *commentApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}

	cmt, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == comment.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding comment by ID")
	}
	return ctx.JSON(http.StatusOK, cmt)
}

func (api *commentApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}

	var data comment.UpdateComment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateComment")
	}

	cmt, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == comment.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating comment")
	}
	return ctx.JSON(http.StatusOK, cmt)
}

func (api *commentApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *commentApi) generate(ctx echo.Context) error {
	name := core.CleanString(ctx.QueryParam("name"))
	if name == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "name", Error: "name is required"})
	}

	lines := 3
	if raw := ctx.QueryParam("lines"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return core.NewValidationError(nil, core.FieldError{Field: "lines", Error: "lines must be a positive integer"})
		}
		lines = n
	}

	content, err := api.generator.Generate(ctx.Request().Context(), name, lines)
	if err != nil {
		return errors.Wrap(err, "generating record sentences")
	}
	return ctx.JSON(http.StatusOK, GeneratedRecordResponse{Content: content})
}

type GeneratedRecordResponse struct {
	Content string `json:"content"`
}
