package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"shoecard/card"
	"shoecard/catalog"
	"shoecard/config"
	"shoecard/controllers"
	"shoecard/logger"
	"shoecard/metrics"
	"shoecard/middleware"
	"shoecard/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (default from config or $PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		cfg.Server.Port = p
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "path", cfg.Catalog.Path, "shoes", cat.Len())

	app, err := newApp(cfg, cat, time.Now)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("listening", "addr", addr)
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}

// newApp wires the fiber app: panic recovery, cors, request logging, static assets, card routes and metrics.
func newApp(cfg *config.Config, cat *catalog.Catalog, clock func() time.Time) (*fiber.App, error) {
	renderer, err := card.NewRenderer()
	if err != nil {
		return nil, err
	}
	reg := metrics.NewRegistry()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins, // comma separated
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger.Default()))

	app.Static("/static", cfg.Server.StaticDir)

	shoes := &controllers.ShoeController{
		Catalog:      cat,
		Renderer:     renderer,
		Cards:        card.Builder{CurrencySymbol: cfg.Display.CurrencySymbol},
		Metrics:      reg,
		Log:          logger.Default(),
		Now:          clock,
		PageLimit:    cfg.Display.PageLimit,
		MaxPageLimit: cfg.Display.MaxPageLimit,
	}
	routes.RegisterRoutes(app, shoes, reg)

	return app, nil
}
