package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindHTTPStatus(t *testing.T) {
	cases := map[ErrorKind]int{
		KindUnauthorized:    http.StatusUnauthorized,
		KindForbidden:       http.StatusForbidden,
		KindInvalidArgument: http.StatusBadRequest,
		KindAlreadyBooked:   http.StatusBadRequest,
		KindNotFound:        http.StatusNotFound,
		KindInfrastructure:  http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), string(kind))
	}
}

func TestAlreadyBookedErrorNamesDate(t *testing.T) {
	err := AlreadyBookedError("2026-09-10")
	assert.Equal(t, KindAlreadyBooked, err.Kind)
	assert.Equal(t, "You already have a booking on 2026-09-10", err.Message)
}

func TestInfraErrorWraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := InfraError("booking insert", cause)

	assert.Equal(t, KindInfrastructure, err.Kind)
	assert.ErrorIs(t, err, cause)

	var serr *ServiceError
	require.ErrorAs(t, error(err), &serr)
	assert.Equal(t, "booking insert failed", serr.Message)
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(KindInfrastructure))
}
