package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"motoparts/internal/catalog"
	"motoparts/internal/config"
	"motoparts/internal/domain"
	"motoparts/internal/http/handlers"
	"motoparts/internal/kv"
	applog "motoparts/internal/log"
	"motoparts/internal/store"
	"motoparts/internal/taxonomy"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("data dir %s: %v", cfg.DataDir, err)
	}

	// ---------- Storage ----------
	kvStore := kv.Open(cfg.KVPath(), cfg.KVQuota)
	blob := catalog.NewBlob(kvStore)

	// The structured store is preferred but never required: open failure
	// degrades to the blob store instead of refusing to start.
	var structured catalog.RecordStore
	if cfg.UseSQLite {
		st, err := store.Open(cfg.DBDSN)
		if err != nil {
			applog.Warnf("store.open", err, map[string]any{"dsn": cfg.DBDSN})
		} else {
			defer st.Close()
			structured = st
		}
	}

	state := catalog.NewState()
	facade := catalog.NewFacade(structured, blob, state)
	tax := taxonomy.NewService(kvStore, state)
	svc := catalog.NewService(facade, tax)

	records := facade.LoadIntoState()
	applog.Infof("catalog.ready", map[string]any{"count": len(records)})

	state.Subscribe(func(records []domain.Record) {
		applog.Infof("catalog.render", map[string]any{"count": len(records)})
	})

	// Background poll keeps this process converged with any other process
	// writing to the same data dir.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go catalog.NewSynchronizer(facade, cfg.PollInterval).Run(ctx)

	// ---------- Templates & app ----------
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo deu errado. Tente novamente.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo deu errado. Tente novamente.")
			}
			return nil
		},
	})
	// Uploads carry base64 images; leave headroom above the per-file cap.
	app.Server().MaxRequestBodySize = 64 << 20

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))

	app.Static("/static", "./web/static")

	// ---------- Routes ----------
	deps := handlers.NewDeps(state, svc, tax)

	app.Get("/", deps.ProductHandler.Home)
	app.Get("/api/products", deps.ProductHandler.List)
	app.Get("/api/products/:id", deps.ProductHandler.Detail)
	app.Get("/api/filters", deps.ProductHandler.Filters)
	app.Get("/api/finder", deps.ProductHandler.Finder)
	app.Get("/api/categories", deps.TaxonomyHandler.Categories)
	app.Get("/api/brands", deps.TaxonomyHandler.Brands)
	app.Get("/api/fields/:subcategory", deps.AdminHandler.Fields)

	admin := app.Group("/admin")
	admin.Get("/", deps.AdminHandler.Page)
	admin.Post("/products", deps.AdminHandler.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/export", deps.AdminHandler.Export)
	admin.Post("/import", deps.AdminHandler.Import)
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Post("/categories", deps.TaxonomyHandler.AddCategory)
	admin.Post("/categories/:key", deps.TaxonomyHandler.UpdateCategory)
	admin.Post("/categories/:key/delete", deps.TaxonomyHandler.DeleteCategory)
	admin.Post("/brands", deps.TaxonomyHandler.AddBrand)
	admin.Post("/brands/delete", deps.TaxonomyHandler.RemoveBrand)
	admin.Post("/brands/rename", deps.TaxonomyHandler.RenameBrand)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página não encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
