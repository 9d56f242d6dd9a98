package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/prompt"
)

type promptApi struct {
	svc *prompt.Service
}

func registerPromptAPI(e *echo.Echo, svc *prompt.Service) {
	api := promptApi{svc: svc}
	e.POST("/prompts", api.create, middleware.BodyLimit(uploadSizeLimit))
}

// create accepts either a JSON body or a multipart form with an optional
// attachment whose filename is echoed in the generated document.
func (api *promptApi) create(ctx echo.Context) error {
	var data PromptRequest

	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to PromptRequest")
		}
	} else {
		data.Content = ctx.FormValue("content")
		data.AIModel = ctx.FormValue("ai_model")
		if fh, err := ctx.FormFile("file"); err == nil {
			data.Filename = fh.Filename
		}
	}

	res := api.svc.Handle(data.Content, data.AIModel, data.Filename)
	return ctx.JSON(http.StatusOK, res)
}

type PromptRequest struct {
	Content  string `json:"content"`
	AIModel  string `json:"ai_model"`
	Filename string `json:"filename"`
}
