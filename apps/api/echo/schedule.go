package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

func registerScheduleAPI(e *echo.Echo, svc *schedule.Service, validate *validator.Validate) {
	api := scheduleApi{
		svc:      svc,
		validate: validate,
	}

	sg := e.Group("/schedules")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/:id", api.retrieve)
	sg.PATCH("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *scheduleApi) create(ctx echo.Context) error {
	var data schedule.NewSchedule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSchedule")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sched, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating schedule")
	}
	return ctx.JSON(http.StatusCreated, sched)
}

func (api *scheduleApi) query(ctx echo.Context) error {
	scheds, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying schedules")
	}
	if scheds == nil {
		scheds = []schedule.Schedule{}
	}
	return ctx.JSON(http.StatusOK, scheds)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}

	sched, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding schedule by ID")
	}
	return ctx.JSON(http.StatusOK, sched)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}

	var data schedule.UpdateSchedule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSchedule")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sched, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating schedule")
	}
	return ctx.JSON(http.StatusOK, sched)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errHttpNotFound
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting schedule")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
