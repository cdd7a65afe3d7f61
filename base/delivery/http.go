package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// upstreamError is implemented by errors of third party apis that carry a response status
type upstreamError interface {
	error
	Status() int
}

// MakeJsonResp wraps data into JsonResponse. Errors are rendered as their message and,
// when status is 500, refined to 404 for missing items, 400 for invalid input and the
// upstream status for third party failures.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = errorStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func errorStatus(err error, status int) int {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	if status != http.StatusInternalServerError {
		return status
	}
	if domain.IsBadRequest(err) {
		return http.StatusBadRequest
	}
	var upstream upstreamError
	if errors.As(err, &upstream) && upstream.Status() >= 400 {
		return upstream.Status()
	}
	return status
}
