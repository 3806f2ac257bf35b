package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/thevittavardhan/backend/internal/core/ports"
)

// ContentHandler serves the read-only marketing listings. There is no
// service layer behind it: the routes are pure repository pass-throughs.
type ContentHandler struct {
	repo ports.ContentRepository
}

func NewContentHandler(repo ports.ContentRepository) *ContentHandler {
	return &ContentHandler{repo: repo}
}

// Blogs handles GET /api/blogs.
//
// @Summary      List blog articles
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category ('all' disables the filter)"
// @Param        featured  query     bool    false  "Only featured articles"
// @Param        search    query     string  false  "Substring match over title, content, tags"
// @Success      200       {object}  Envelope
// @Router       /api/blogs [get]
func (h *ContentHandler) Blogs(c echo.Context) error {
	blogs, err := h.repo.ListBlogs(c.Request().Context(), ports.BlogFilter{
		Category: c.QueryParam("category"),
		Featured: c.QueryParam("featured") == "true",
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return okData(c, blogs)
}

// Testimonials handles GET /api/testimonials.
//
// @Summary      List approved testimonials
// @Tags         content
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /api/testimonials [get]
func (h *ContentHandler) Testimonials(c echo.Context) error {
	testimonials, err := h.repo.ListTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return okData(c, testimonials)
}

// Clients handles GET /api/clients.
//
// @Summary      List showcased clients
// @Tags         content
// @Produce      json
// @Param        industry  query     string  false  "Filter by industry ('all' disables the filter)"
// @Param        featured  query     bool    false  "Only featured clients"
// @Param        search    query     string  false  "Substring match over name, description, location"
// @Success      200       {object}  Envelope
// @Router       /api/clients [get]
func (h *ContentHandler) Clients(c echo.Context) error {
	clients, err := h.repo.ListClients(c.Request().Context(), ports.ClientFilter{
		Industry: c.QueryParam("industry"),
		Featured: c.QueryParam("featured") == "true",
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return okData(c, clients)
}
