package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
	"github.com/oksasatya/creator-commerce/pkg/response"
	"github.com/oksasatya/creator-commerce/pkg/validation"
)

// fail maps use case errors onto HTTP statuses.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *application.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(c, http.StatusBadRequest, ve.Message, response.ErrorBody{
			Code:    "validation_failed",
			Details: map[string]string{ve.Field: ve.Message},
		})
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", response.ErrorBody{Code: "not_found"})
	case errors.Is(err, repo.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", response.ErrorBody{Code: "invalid_credentials"})
	case errors.Is(err, repo.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "email already registered", response.ErrorBody{Code: "email_taken"})
	case errors.Is(err, application.ErrMixedCurrencies):
		response.Error(c, http.StatusUnprocessableEntity, err.Error(), response.ErrorBody{Code: "mixed_currencies"})
	case errors.Is(err, application.ErrUploadsDisabled):
		response.Error(c, http.StatusServiceUnavailable, err.Error(), response.ErrorBody{Code: "uploads_disabled"})
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", response.ErrorBody{Code: "internal"})
	}
}

func badPayload(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "invalid payload", response.ErrorBody{
		Code:    "invalid_payload",
		Details: validation.ToDetails(err),
	})
}

func notFound(c *gin.Context, what string) {
	response.Error(c, http.StatusNotFound, what+" not found", response.ErrorBody{Code: "not_found"})
}
