package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func JSONPage(ctx iris.Context, data interface{}, page, perPage int, total int64) {
	ctx.JSON(iris.Map{
		"data":  data,
		"meta":  PageMeta{Page: page, PerPage: perPage, Total: total},
		"links": iris.Map{},
	})
}

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateNotFound(ctx iris.Context) {
	JSONError(ctx, http.StatusNotFound, "not_found", "resource not found")
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, http.StatusInternalServerError, "server_error", "internal server error")
}

// HandleValidationErrors turns validator field errors into the standard
// error envelope; anything else is treated as a malformed payload.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, iris.Map{
				"field": fe.Field(),
				"tag":   fe.Tag(),
			})
		}
		ctx.StatusCode(http.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"error": "validation_error", "message": "validation failed", "fields": fields})
		return
	}
	JSONError(ctx, http.StatusBadRequest, "invalid_payload", "invalid request body")
}
