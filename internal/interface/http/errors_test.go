package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/internal/application"
	repo "github.com/oksasatya/creator-commerce/internal/domain/repository"
)

func init() { gin.SetMode(gin.TestMode) }

func TestFailMapsErrorsToStatus(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&application.ValidationError{Field: "email", Message: "email is invalid"}, http.StatusBadRequest, "validation_failed"},
		{fmt.Errorf("profile: %w", repo.ErrNotFound), http.StatusNotFound, "not_found"},
		{repo.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{repo.ErrEmailTaken, http.StatusConflict, "email_taken"},
		{application.ErrMixedCurrencies, http.StatusUnprocessableEntity, "mixed_currencies"},
		{application.ErrUploadsDisabled, http.StatusServiceUnavailable, "uploads_disabled"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		fail(c, logger, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.code, body.Error.Code)
	}
}

func TestFailIncludesFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	fail(c, nil, &application.ValidationError{Field: "content", Message: "message content is required"})
	assert.Contains(t, w.Body.String(), `"content":"message content is required"`)
}
