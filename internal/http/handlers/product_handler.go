package handlers

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"motoparts/internal/catalog"
	"motoparts/internal/domain"
	"motoparts/internal/finder"
	applog "motoparts/internal/log"
	"motoparts/internal/taxonomy"
	"motoparts/internal/validate"
)

const pageSize = 24

type ProductHandler struct {
	State *catalog.State
	Tax   *taxonomy.Service
}

// GET /
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Stats":      h.State.Stats(),
		"Categories": h.Tax.Categories(),
	})
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	records := h.State.Records()

	if q, ok := validate.Q(c.Query("q")); ok {
		results := finder.Search(records, q)
		records = records[:0]
		for _, res := range results {
			records = append(records, res.Record)
		}
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		records = keep(records, func(r domain.Record) bool { return r.Category == cat })
	}
	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		records = keep(records, func(r domain.Record) bool { return strings.EqualFold(r.Brand, brand) })
	}
	if status, ok := validate.Status(c.Query("status")); ok {
		records = keep(records, func(r domain.Record) bool { return r.Status == status })
	}
	if key, ok := validate.Sort(c.Query("sort")); ok {
		sortRecords(records, key)
	}

	total := len(records)
	page := validate.Page(c.Query("page"))
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"products": records[start:end],
		"total":    total,
		"page":     page,
		"pages":    (total + pageSize - 1) / pageSize,
	})
}

// GET /api/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Warn(c, "product.detail.badid", map[string]any{"id": c.Params("id")})
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	for _, r := range h.State.Records() {
		if r.ID == id {
			return c.JSON(r)
		}
	}
	return c.Status(404).JSON(fiber.Map{"error": "product not found"})
}

// GET /api/filters
func (h *ProductHandler) Filters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories":   h.Tax.Categories(),
		"brands":       h.State.DistinctBrands(),
		"applications": h.State.DistinctApplications(),
		"models":       taxonomy.Applications,
	})
}

// GET /api/finder
func (h *ProductHandler) Finder(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		applog.Warn(c, "finder.badquery", nil)
		return c.Status(400).JSON(fiber.Map{"error": "missing query"})
	}
	results := finder.Search(h.State.Records(), q)
	if len(results) > 50 {
		results = results[:50]
	}
	applog.Info(c, "finder.search", map[string]any{"q": q, "hits": len(results)})
	return c.JSON(fiber.Map{"results": results})
}

func keep(records []domain.Record, pred func(domain.Record) bool) []domain.Record {
	out := records[:0]
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func sortRecords(records []domain.Record, key string) {
	switch key {
	case "name":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	case "stock":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Stock > records[j].Stock })
	case "recent":
		// ids are creation timestamps, so newest first is just descending id
		sort.SliceStable(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	}
}
