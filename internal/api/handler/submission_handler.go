package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thevittavardhan/backend/internal/api/metrics"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

// SubmissionHandler accepts the public contact and career forms. Success
// means the record is durably stored; the notification email is best-effort
// and its outcome is never reported to the submitter.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Contact handles POST /api/contact.
//
// @Summary      Submit a contact form
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /api/contact [post]
func (h *SubmissionHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.service.SubmitContact(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	metrics.SubmissionsReceivedTotal.WithLabelValues("contact").Inc()

	return okMessage(c, "Message sent successfully")
}

// Career handles POST /api/careers.
//
// @Summary      Submit a job application
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      careerRequest  true  "Application fields"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /api/careers [post]
func (h *SubmissionHandler) Career(c echo.Context) error {
	var req careerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.service.SubmitCareer(c.Request().Context(), ports.CareerInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Experience: req.Experience,
		Message:    req.Message,
		Resume:     req.Resume,
	})
	if err != nil {
		return err
	}
	metrics.SubmissionsReceivedTotal.WithLabelValues("career").Inc()

	return okMessage(c, "Application submitted successfully")
}
