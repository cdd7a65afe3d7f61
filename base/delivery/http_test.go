package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/andy-marketplace/goapi/domain"
)

type teapotError struct{}

func (teapotError) Error() string { return "teapot" }
func (teapotError) Status() int   { return http.StatusTeapot }

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       interface{}
		wantStatus int
		wantBody   JsonResponse
	}{
		{"data", http.StatusOK, []string{"a"}, http.StatusOK, JsonResponse{[]interface{}{"a"}, JsonResponseStatusSuccess}},
		{"not found", http.StatusInternalServerError, domain.ErrNotFound, http.StatusNotFound, JsonResponse{domain.ErrNotFound.Error(), JsonResponseStatusFail}},
		{"validation", http.StatusInternalServerError, xerrors.Errorf("mint: %w", domain.ErrInvalidRoyaltyFee), http.StatusBadRequest, JsonResponse{"mint: " + domain.ErrInvalidRoyaltyFee.Error(), JsonResponseStatusFail}},
		{"upstream", http.StatusInternalServerError, xerrors.Errorf("pin: %w", teapotError{}), http.StatusTeapot, JsonResponse{"pin: teapot", JsonResponseStatusFail}},
		{"explicit status kept", http.StatusUnauthorized, errors.New("nope"), http.StatusUnauthorized, JsonResponse{"nope", JsonResponseStatusFail}},
		{"internal", http.StatusInternalServerError, errors.New("boom"), http.StatusInternalServerError, JsonResponse{"boom", JsonResponseStatusFail}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			req.NoError(MakeJsonResp(c, tt.status, tt.data))
			req.Equal(tt.wantStatus, rec.Code)

			var body JsonResponse
			req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			req.Equal(tt.wantBody, body)
		})
	}
}
