package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"notifier/internal/delivery/http/helpers"
	"notifier/internal/domain"
)

// SendNotificationRequest is the request body for POST /notifications/send
type SendNotificationRequest struct {
	ToEmail      string         `json:"to_email" validate:"required,email"`
	TemplateName string         `json:"template_name" validate:"required"`
	Language     string         `json:"language"`
	Context      map[string]any `json:"context"`
}

// SendNotificationResponse is the success response body for POST /notifications/send
// swagger:model SendNotificationResponse
type SendNotificationResponse struct {
	Status           string `json:"status"`
	ProviderResponse any    `json:"provider_response"`
}

// NotificationController handles notification endpoints.
type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

// NewNotificationController creates a NotificationController with the given logger and service.
func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// Send godoc
// @Summary Send a notification email
// @Description Render the named template in the requested language and dispatch it to the recipient through the email provider. Language defaults to "es"; context is merged into the template render context and wins on key collision.
// @Tags notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SendNotificationRequest true "Notification request"
// @Success 200 {object} controllers.SendNotificationResponse "status is \"success\"; provider_response is the provider's raw payload"
// @Failure 401 {object} helpers.ErrorResponse "missing or invalid credentials"
// @Failure 404 {object} helpers.ErrorResponse "template not found"
// @Failure 422 {object} helpers.ErrorResponse "malformed body or invalid email"
// @Failure 500 {object} helpers.ErrorResponse "provider or render failure"
// @Router /notifications/send [post]
func (c *NotificationController) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.Language == "" {
		req.Language = domain.DefaultLocale
	}
	if req.Context == nil {
		req.Context = map[string]any{}
	}

	response, err := c.Service.SendEmail(r.Context(), req.ToEmail, req.Language, req.TemplateName, req.Context)
	if err != nil {
		var notFound *domain.TemplateNotFoundError
		if errors.As(err, &notFound) {
			helpers.WriteError(w, http.StatusNotFound, notFound.Error())
			return
		}
		var provider *domain.ProviderError
		if errors.As(err, &provider) {
			helpers.WriteError(w, http.StatusInternalServerError, provider.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helpers.WriteJSON(w, http.StatusOK, SendNotificationResponse{
		Status:           "success",
		ProviderResponse: response,
	})
}
