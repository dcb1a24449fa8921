package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-admin-service/internal/application"
	domainsvc "user-admin-service/internal/domain/service"
	"user-admin-service/internal/domain/valueobject"
	"user-admin-service/pkg/response"
)

// writeError maps domain error kinds to HTTP responses. Client-input
// problems become 4xx and are not logged as failures; infrastructure
// failures become an opaque 500 and are logged with the cause.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var invalid *valueobject.InvalidValueError
	if errors.As(err, &invalid) {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid value", map[string]string{invalid.Field: invalid.Message}))
		return
	}
	var unknownRoles *application.UnknownRolesError
	if errors.As(err, &unknownRoles) {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "unknown roles", unknownRoles.Names))
		return
	}
	switch {
	case errors.Is(err, application.ErrMissingRoles):
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "role names are required", nil))
	case errors.Is(err, domainsvc.ErrDuplicateUsername):
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "username already exists", nil))
	case errors.Is(err, domainsvc.ErrDuplicateEmail):
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "email already exists", nil))
	case errors.Is(err, application.ErrUserNotFound):
		writeJSON(c, response.Error[any](c, http.StatusNotFound, "user not found", nil))
	default:
		if logger != nil {
			logger.WithError(err).Error("use case failed")
		}
		writeJSON(c, response.Error[any](c, http.StatusInternalServerError, "internal error", nil))
	}
}

func writeJSON[T any](c *gin.Context, resp response.APIResponse[T]) {
	c.JSON(resp.Status, resp)
}
