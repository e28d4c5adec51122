package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"motoparts/internal/catalog"
	applog "motoparts/internal/log"
	"motoparts/internal/taxonomy"
	"motoparts/internal/validate"
)

type TaxonomyHandler struct {
	Catalog *catalog.Service
	Tax     *taxonomy.Service
}

// GET /api/categories
func (h *TaxonomyHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.Tax.Categories())
}

// POST /admin/categories
func (h *TaxonomyHandler) AddCategory(c *fiber.Ctx) error {
	key, okKey := validate.Key(c.FormValue("key"))
	label, okLabel := validate.Name(c.FormValue("label"))
	if !okKey || !okLabel {
		return c.Status(400).SendString("invalid category key or label")
	}
	items := validate.List(c.FormValue("items"))
	if err := h.Tax.AddCategory(key, label, items); err != nil {
		applog.Error(c, "admin.category.add.fail", err, map[string]any{"key": key})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.category.add", map[string]any{"key": key})
	return c.Redirect("/admin")
}

// POST /admin/categories/:key
func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	key, ok := validate.Key(c.Params("key"))
	if !ok {
		return c.Status(400).SendString("invalid category key")
	}
	label, ok := validate.Name(c.FormValue("label"))
	if !ok {
		return c.Status(400).SendString("invalid category label")
	}
	items := validate.List(c.FormValue("items"))
	if err := h.Tax.UpdateCategory(key, label, items); err != nil {
		applog.Error(c, "admin.category.update.fail", err, map[string]any{"key": key})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.category.update", map[string]any{"key": key})
	return c.Redirect("/admin")
}

// POST /admin/categories/:key/delete
func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	key, ok := validate.Key(c.Params("key"))
	if !ok {
		return c.Status(400).SendString("invalid category key")
	}
	if err := h.Tax.DeleteCategory(key); err != nil {
		var refErr *taxonomy.ReferenceError
		if errors.As(err, &refErr) {
			return c.Status(409).SendString(refErr.Error())
		}
		applog.Error(c, "admin.category.delete.fail", err, map[string]any{"key": key})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.category.delete", map[string]any{"key": key})
	return c.Redirect("/admin")
}

// GET /api/brands
func (h *TaxonomyHandler) Brands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"brands": h.Tax.Brands()})
}

// POST /admin/brands
func (h *TaxonomyHandler) AddBrand(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid brand name")
	}
	if err := h.Tax.AddBrand(name); err != nil {
		applog.Error(c, "admin.brand.add.fail", err, map[string]any{"brand": name})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.brand.add", map[string]any{"brand": name})
	return c.Redirect("/admin")
}

// POST /admin/brands/delete
func (h *TaxonomyHandler) RemoveBrand(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid brand name")
	}
	if err := h.Tax.RemoveBrand(name); err != nil {
		var refErr *taxonomy.ReferenceError
		if errors.As(err, &refErr) {
			return c.Status(409).SendString(refErr.Error())
		}
		applog.Error(c, "admin.brand.delete.fail", err, map[string]any{"brand": name})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.brand.delete", map[string]any{"brand": name})
	return c.Redirect("/admin")
}

// POST /admin/brands/rename
// Goes through the catalog service so referencing records are rewritten
// before the registry changes.
func (h *TaxonomyHandler) RenameBrand(c *fiber.Ctx) error {
	oldName, okOld := validate.Name(c.FormValue("old"))
	newName, okNew := validate.Name(c.FormValue("new"))
	if !okOld || !okNew {
		return c.Status(400).SendString("invalid brand name")
	}
	if err := h.Catalog.RenameBrand(oldName, newName); err != nil {
		applog.Error(c, "admin.brand.rename.fail", err, map[string]any{"old": oldName, "new": newName})
		return c.Status(400).SendString(err.Error())
	}
	applog.Audit(c, "admin.brand.rename", map[string]any{"old": oldName, "new": newName})
	return c.Redirect("/admin")
}
