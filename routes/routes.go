package routes

import (
	"shoecard/controllers"
	"shoecard/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, shoes *controllers.ShoeController, reg *metrics.Registry) {

	// storefront
	app.Get("/", shoes.GetShoeGrid)
	app.Get("/shoe/:slug", shoes.GetShoeCard)

	// api
	app.Get("/shoes", shoes.GetShoes)
	app.Get("/shoes/:slug", shoes.GetShoeBySlug)
	app.Get("/shoes/:slug/card", shoes.GetShoeCard)

	// metrics
	if reg != nil {
		app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))
	}
}
