package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/ocr"
	"github.com/vicsion901-rgb/onlyteaching/core/student"
	"github.com/vicsion901-rgb/onlyteaching/core/xlsimport"
)

const uploadSizeLimit = "10M"

type importApi struct {
	importer *xlsimport.Importer
	students *student.Service
	ocrSvc   *ocr.Service
}

func registerImportAPI(e *echo.Echo, importer *xlsimport.Importer, students *student.Service, ocrSvc *ocr.Service) {
	api := importApi{
		importer: importer,
		students: students,
		ocrSvc:   ocrSvc,
	}

	e.POST("/excel/students/import", api.importStudents, middleware.BodyLimit(uploadSizeLimit))

	rg := e.Group("/student-records")
	rg.POST("/upload-excel", api.uploadExcel, middleware.BodyLimit(uploadSizeLimit))
	rg.POST("/upload-image", api.uploadImage, middleware.BodyLimit(uploadSizeLimit))
	rg.GET("/list", api.list)
	rg.POST("/bulk", api.bulkSave)

	e.GET("/students", api.query)
}

// Handlers

func (api *importApi) importStudents(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		// a roster-less request is answered with an empty pipeline result
		return ctx.JSON(http.StatusOK, xlsimport.ImportResult{
			Data:  []student.Row{},
			Stats: xlsimport.ImportStats{DetectedHeaderRowIndex: -1},
		})
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded roster")
	}
	defer f.Close()

	res, err := api.importer.ImportStudents(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "importing students")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *importApi) uploadExcel(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded workbook")
	}
	defer f.Close()

	res, err := api.importer.UploadRecords(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "uploading student records")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *importApi) uploadImage(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded image")
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "reading uploaded image")
	}

	res, err := api.ocrSvc.ParseImage(ctx.Request().Context(), image)
	if err != nil {
		if errors.Cause(err) == ocr.ErrNotEnabled {
			return echo.NewHTTPError(http.StatusNotImplemented, "image recognition is not enabled on this build")
		}
		return errors.Wrap(err, "parsing roster image")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *importApi) list(ctx echo.Context) error {
	students, err := api.students.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *importApi) bulkSave(ctx echo.Context) error {
	var data BulkSaveRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BulkSaveRequest")
	}

	count, err := api.students.Reconcile(ctx.Request().Context(), data.Students)
	if err != nil {
		return errors.Wrap(err, "saving roster")
	}
	saved, err := api.students.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing students")
	}
	if saved == nil {
		saved = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, BulkSaveResponse{Saved: saved, Count: count})
}

func (api *importApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	students, err := api.students.QueryOrdered(ctx.Request().Context(), ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

type (
	BulkSaveRequest struct {
		Students []student.Row `json:"students"`
	}

	BulkSaveResponse struct {
		Saved []student.Student `json:"saved"`
		Count int               `json:"count"`
	}
)
