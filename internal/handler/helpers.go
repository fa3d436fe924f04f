package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/apierror"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindForm binds form-encoded (or query) input and runs validator tags.
// Returns false and writes the error response if validation fails — the
// caller should return immediately without writing another response.
func bindForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid form data: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses the :id path segment. Writes a 404 and returns false when
// it is not a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, apierror.New("record not found"))
		return 0, false
	}
	return uint(id), true
}

// parseDate parses a YYYY-MM-DD form value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// formBool normalizes HTML checkbox values.
func formBool(s string) bool {
	switch s {
	case "on", "yes", "true", "1":
		return true
	}
	return false
}

// respondError maps service sentinel errors onto HTTP statuses. Unknown
// errors are deferred to the error-handler middleware as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDuplicateTag):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
