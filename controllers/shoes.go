package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"shoecard/card"
	"shoecard/catalog"
	"shoecard/logger"
	"shoecard/metrics"
	"shoecard/variant"
)

// ShoeController serves shoe cards from a catalog.
type ShoeController struct {
	Catalog      *catalog.Catalog
	Renderer     *card.Renderer
	Cards        card.Builder
	Metrics      *metrics.Registry
	Log          *logger.Logger
	Now          func() time.Time
	PageLimit    int
	MaxPageLimit int
}

// ShoesListResp is one page of card views plus the filtered total.
type ShoesListResp struct {
	Items []card.View `json:"items"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// GetShoes lists card views with filtering, sorting and pagination.
//
// GET /shoes
func (h *ShoeController) GetShoes(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(h.PageLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > h.MaxPageLimit {
		limit = h.PageLimit
	}

	views, err := h.listing(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filter, err := parseVariants(c.Query("variant"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(filter) > 0 {
		kept := views[:0]
		for _, v := range views {
			if filter[v.Variant] {
				kept = append(kept, v)
			}
		}
		views = kept
	}

	total := len(views)
	items := []card.View{}
	// page is checked against the page count before multiplying so huge values cannot overflow
	if pages := (total + limit - 1) / limit; page <= pages {
		offset := (page - 1) * limit
		end := offset + limit
		if end > total {
			end = total
		}
		items = views[offset:end]
	}
	h.observe(items)

	return c.JSON(ShoesListResp{Items: items, Total: total, Page: page, Limit: limit})
}

// GetShoeBySlug returns the card view of one shoe as JSON.
//
// GET /shoes/:slug
func (h *ShoeController) GetShoeBySlug(c *fiber.Ctx) error {
	v, status, err := h.view(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	h.observe([]card.View{v})
	return c.JSON(v)
}

// GetShoeCard renders the card markup of one shoe.
//
// GET /shoes/:slug/card and GET /shoe/:slug
func (h *ShoeController) GetShoeCard(c *fiber.Ctx) error {
	v, status, err := h.view(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := h.Renderer.Render(v)
	if err != nil {
		return h.renderFailed(c, err)
	}
	h.observe([]card.View{v})

	c.Type("html", "utf-8")
	return c.SendString(html)
}

// GetShoeGrid renders the whole listing as a grid of cards.
//
// GET /
func (h *ShoeController) GetShoeGrid(c *fiber.Ctx) error {
	views, err := h.listing(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	html, err := h.Renderer.RenderGrid(views)
	if err != nil {
		return h.renderFailed(c, err)
	}
	h.observe(views)

	c.Type("html", "utf-8")
	return c.SendString(html)
}

// listing builds views for the whole catalog in the requested order.
func (h *ShoeController) listing(c *fiber.Ctx) ([]card.View, error) {
	now, err := h.now(c)
	if err != nil {
		return nil, err
	}
	shoes, err := h.Catalog.Sorted(c.Query("sort", catalog.SortNewest))
	if err != nil {
		return nil, err
	}
	return h.Cards.BuildAll(shoes, now), nil
}

func (h *ShoeController) view(c *fiber.Ctx) (card.View, int, error) {
	now, err := h.now(c)
	if err != nil {
		return card.View{}, fiber.StatusBadRequest, err
	}
	shoe, err := h.Catalog.BySlug(c.Params("slug"))
	if errors.Is(err, catalog.ErrNotFound) {
		return card.View{}, fiber.StatusNotFound, errors.New("not found")
	}
	if err != nil {
		return card.View{}, fiber.StatusInternalServerError, err
	}
	return h.Cards.Build(shoe, now), fiber.StatusOK, nil
}

// now returns the ?now= preview time if given, otherwise the controller clock.
func (h *ShoeController) now(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("now"))
	if raw == "" {
		return h.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("now must be RFC3339")
	}
	return t, nil
}

func (h *ShoeController) observe(views []card.View) {
	if h.Metrics == nil {
		return
	}
	for _, v := range views {
		h.Metrics.ObserveVariant(v.Variant)
	}
}

func (h *ShoeController) renderFailed(c *fiber.Ctx, err error) error {
	if h.Metrics != nil {
		h.Metrics.RenderErrors.Inc()
	}
	if h.Log != nil {
		h.Log.Log(logger.ERROR, "render failed", "path", c.Path(), "err", err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
}

func parseVariants(s string) (map[variant.Variant]bool, error) {
	tags := splitCSV(s)
	if len(tags) == 0 {
		return nil, nil
	}
	out := make(map[variant.Variant]bool, len(tags))
	for _, tag := range tags {
		v, err := variant.Parse(tag)
		if err != nil {
			return nil, err
		}
		out[v] = true
	}
	return out, nil
}

// helpers
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
