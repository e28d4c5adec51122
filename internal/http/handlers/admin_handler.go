package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"motoparts/internal/catalog"
	"motoparts/internal/domain"
	"motoparts/internal/fields"
	"motoparts/internal/images"
	"motoparts/internal/kv"
	applog "motoparts/internal/log"
	"motoparts/internal/taxonomy"
	"motoparts/internal/validate"
)

type AdminHandler struct {
	State      *catalog.State
	Catalog    *catalog.Service
	Tax        *taxonomy.Service
	Compressor images.Compressor
}

// GET /admin
func (h *AdminHandler) Page(c *fiber.Ctx) error {
	return render(c, "admin", fiber.Map{
		"Stats":                  h.State.Stats(),
		"Categories":             h.Tax.Categories(),
		"Brands":                 h.Tax.Brands(),
		"Applications":           taxonomy.Applications,
		"TechnicalSubcategories": fields.Subcategories(),
		"Products":               h.State.Records(),
	})
}

// POST /admin/products
// Multipart form: scalar fields, the per-subcategory technical fields, an
// optional "image" file and up to GalleryMax "gallery" files. A present id
// means edit; edits start from the stored record so unuploaded images
// survive.
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid product name")
	}

	var r domain.Record
	if id, ok := validate.ID(c.FormValue("id")); ok {
		for _, existing := range h.State.Records() {
			if existing.ID == id {
				r = existing
				break
			}
		}
		r.ID = id
	}

	r.Name = name
	r.Code = c.FormValue("code", r.Code)
	r.Subcategory = c.FormValue("subcategory")
	r.Brand = c.FormValue("brand")
	r.Description = c.FormValue("description")
	r.Icon = c.FormValue("icon")
	r.Applications = validate.List(c.FormValue("applications"))
	r.CompatibleModels = validate.List(c.FormValue("compatibleModels"))
	r.Years = validate.List(c.FormValue("years"))
	r.Color = c.FormValue("color")
	r.Material = c.FormValue("material")
	r.Weight = c.FormValue("weight")
	r.OEM = c.FormValue("oem")
	r.Specifications = c.FormValue("specifications")
	r.Warranty = c.FormValue("warranty")

	stock, ok := validate.Qty(c.FormValue("stock"))
	if !ok {
		return c.Status(400).SendString("invalid stock")
	}
	minStock, ok := validate.Qty(c.FormValue("minStock"))
	if !ok {
		return c.Status(400).SendString("invalid minimum stock")
	}
	r.Stock, r.MinStock = stock, minStock
	if status, ok := validate.Status(c.FormValue("status")); ok {
		r.Status = status
	}

	r.SpecificFields = h.collectSpecificFields(c, r.Subcategory)
	if bad := fields.Validate(r.Subcategory, r.SpecificFields); len(bad) > 0 {
		return c.Status(400).SendString("invalid technical fields: " + bad[0])
	}

	if c.FormValue("removeImage") == "1" {
		r.Image = ""
	}
	if c.FormValue("clearGallery") == "1" {
		r.Gallery = nil
	}
	if err := h.attachUploads(c, &r); err != nil {
		applog.Error(c, "admin.product.image.fail", err, map[string]any{"product": r.Name})
		if errors.Is(err, catalog.ErrGalleryFull) {
			return c.Status(400).SendString("gallery is full")
		}
		return c.Status(400).SendString("could not process image upload")
	}

	saved, err := h.Catalog.Upsert(r)
	if err != nil {
		applog.Error(c, "admin.product.save.fail", err, map[string]any{"product": r.Name})
		switch {
		case errors.Is(err, catalog.ErrGalleryFull):
			return c.Status(400).SendString("gallery is full")
		case errors.Is(err, kv.ErrQuotaExceeded):
			return c.Status(507).SendString("storage quota exceeded, remove some images")
		}
		return c.Status(500).SendString("could not save product")
	}
	applog.Audit(c, "admin.product.save", map[string]any{"product_id": saved.ID, "name": saved.Name})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid id")
	}
	if err := h.Catalog.Delete(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(500).SendString("could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// GET /admin/export
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.Catalog.ExportFilename()+`"`)
	applog.Audit(c, "admin.export", map[string]any{"count": h.State.Stats().Products})
	return h.Catalog.Export(c.Response().BodyWriter())
}

// POST /admin/import
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).SendString("missing import file")
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(400).SendString("could not read import file")
	}
	defer f.Close()

	n, err := h.Catalog.Import(f)
	if err != nil {
		applog.Error(c, "admin.import.fail", err, map[string]any{"file": fh.Filename})
		if errors.Is(err, catalog.ErrFormat) {
			return c.Status(400).SendString("import must be a JSON array of products")
		}
		return c.Status(500).SendString("could not import products")
	}
	applog.Audit(c, "admin.import", map[string]any{"file": fh.Filename, "count": n})
	return c.Redirect("/admin")
}

// GET /admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.State.Stats())
}

// GET /api/fields/:subcategory
func (h *AdminHandler) Fields(c *fiber.Ctx) error {
	sub, err := url.PathUnescape(c.Params("subcategory"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid subcategory"})
	}
	specs := fields.For(sub)
	if specs == nil {
		specs = []fields.FieldSpec{}
	}
	return c.JSON(fiber.Map{"fields": specs})
}

func (h *AdminHandler) collectSpecificFields(c *fiber.Ctx, subcategory string) map[string]string {
	var out map[string]string
	for _, spec := range fields.For(subcategory) {
		if v := c.FormValue(spec.Name); v != "" {
			if out == nil {
				out = map[string]string{}
			}
			out[spec.Name] = v
		}
	}
	return out
}

// attachUploads compresses the uploaded files into the record. The main image
// replaces, gallery files append. The gallery cap is checked against the
// final count before any file is compressed, so an over-cap upload costs no
// decode work; the save-time guard stays as the backstop.
func (h *AdminHandler) attachUploads(c *fiber.Ctx, r *domain.Record) error {
	form, err := c.MultipartForm()
	if err != nil {
		// plain form post without files
		return nil
	}
	if n := len(r.Gallery) + len(form.File["gallery"]); n > domain.GalleryMax {
		return fmt.Errorf("%w: %d images", catalog.ErrGalleryFull, n)
	}
	if files := form.File["image"]; len(files) > 0 {
		uri, err := h.compressFile(files[0], images.Main)
		if err != nil {
			return err
		}
		r.Image = uri
	}
	for _, fh := range form.File["gallery"] {
		uri, err := h.compressFile(fh, images.Gallery)
		if err != nil {
			return err
		}
		r.Gallery = append(r.Gallery, uri)
	}
	return nil
}

func (h *AdminHandler) compressFile(fh *multipart.FileHeader, p images.Profile) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.Compressor.Compress(f, p)
}
