package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/pkg/response"
)

type OnboardingHandler struct {
	Onboarding *application.OnboardingUseCases
	Settings   *application.SettingsUseCases
	Logger     *logrus.Logger
}

func NewOnboardingHandler(o *application.OnboardingUseCases, s *application.SettingsUseCases, logger *logrus.Logger) *OnboardingHandler {
	return &OnboardingHandler{Onboarding: o, Settings: s, Logger: logger}
}

func (h *OnboardingHandler) Options(c *gin.Context) {
	opts, err := h.Onboarding.Options(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, opts, "onboarding options", nil)
}

type onboardingRequest struct {
	Interests []string `json:"interests"`
	Goal      string   `json:"goal"`
}

func (h *OnboardingHandler) Save(c *gin.Context) {
	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	sel, err := h.Onboarding.SaveSelection(c.Request.Context(), req.Interests, req.Goal)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, sel, "onboarding saved", nil)
}

func (h *OnboardingHandler) SettingsSections(c *gin.Context) {
	sections, err := h.Settings.Sections(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, sections, "settings", nil)
}
