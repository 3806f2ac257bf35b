package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thevittavardhan/backend/internal/core/ports"
)

// AdminHandler is the protected query/update surface over submissions. Every
// route is registered behind the auth middleware.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func submissionFilter(c echo.Context) ports.SubmissionFilter {
	return ports.SubmissionFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
		Search: c.QueryParam("search"),
	}
}

// ListContacts handles GET /api/admin/contacts.
//
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        type    query     string  false  "Filter by inquiry type"
// @Param        search  query     string  false  "Substring match over name, email, message"
// @Success      200     {object}  Envelope
// @Failure      401     {object}  Envelope
// @Router       /api/admin/contacts [get]
func (h *AdminHandler) ListContacts(c echo.Context) error {
	contacts, err := h.service.ListContacts(c.Request().Context(), submissionFilter(c))
	if err != nil {
		return err
	}
	return okData(c, contacts)
}

// ListCareers handles GET /api/admin/careers.
//
// @Summary      List job applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        search  query     string  false  "Substring match over name, email, position"
// @Success      200     {object}  Envelope
// @Failure      401     {object}  Envelope
// @Router       /api/admin/careers [get]
func (h *AdminHandler) ListCareers(c echo.Context) error {
	careers, err := h.service.ListCareers(c.Request().Context(), submissionFilter(c))
	if err != nil {
		return err
	}
	return okData(c, careers)
}

// UpdateContactStatus handles PUT /api/admin/contacts/:id.
//
// @Summary      Update a contact's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Contact id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/contacts/{id} [put]
func (h *AdminHandler) UpdateContactStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	contact, err := h.service.UpdateContactStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return okData(c, contact)
}

// UpdateCareerStatus handles PUT /api/admin/careers/:id.
//
// @Summary      Update a job application's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/careers/{id} [put]
func (h *AdminHandler) UpdateCareerStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	career, err := h.service.UpdateCareerStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return okData(c, career)
}

// DeleteContact handles DELETE /api/admin/contacts/:id.
//
// @Summary      Delete a contact submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Contact id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/admin/contacts/{id} [delete]
func (h *AdminHandler) DeleteContact(c echo.Context) error {
	if err := h.service.DeleteContact(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return okMessage(c, "Contact deleted successfully")
}

// DeleteCareer handles DELETE /api/admin/careers/:id.
//
// @Summary      Delete a job application
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Application id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/admin/careers/{id} [delete]
func (h *AdminHandler) DeleteCareer(c echo.Context) error {
	if err := h.service.DeleteCareer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return okMessage(c, "Career application deleted successfully")
}

// Analytics handles GET /api/admin/analytics.
//
// @Summary      Aggregate submission analytics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /api/admin/analytics [get]
func (h *AdminHandler) Analytics(c echo.Context) error {
	analytics, err := h.service.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return okData(c, analytics)
}
