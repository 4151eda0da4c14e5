package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/pkg/extractor"
	"github.com/scanopy/scanopy/pkg/scan"
	"github.com/spf13/viper"
)

// @title Scanopy API
// @version 0.1
// @description The Scanopy API documentation.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func StartAPI() {
	apiLogger := log.With().Str("type", "api").Logger()

	apiLogger.Info().Msg("Initializing...")
	service := scan.NewService(db.Connection(), extractor.NewClient())

	apiLogger.Info().Msg("Initialized everything. Starting the API...")

	app := fiber.New(fiber.Config{
		ServerHeader: "Scanopy",
		AppName:      "Scanopy API",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(viper.GetStringSlice("api.cors.origins"), ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))

	app.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger: &apiLogger,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Running")
	})

	if viper.GetBool("api.metrics.enabled") {
		app.Get(fmt.Sprintf("%v/*", viper.GetString("api.metrics.path")), monitor.New(monitor.Config{Title: viper.GetString("api.metrics.title")}))
	}

	api := app.Group("/api/v1")

	// Auth related endpoints
	auth_app := api.Group("/auth")
	auth_app.Use(limiter.New(limiter.Config{
		Max:               20,
		Expiration:        30 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	auth_app.Post("/user/sign/in", UserSignIn)

	api.Get("/websites", JWTProtected(), FindWebsites)
	api.Post("/websites", JWTProtected(), CreateWebsite)
	api.Get("/websites/:id", JWTProtected(), GetWebsiteDetail)
	api.Delete("/websites/:id", JWTProtected(), DeleteWebsite)

	// Scan endpoints share the workflow service
	scan_app := api.Group("/websites/:id")
	scan_app.Use(func(c *fiber.Ctx) error {
		c.Locals("scanService", service)
		return c.Next()
	})

	scan_app.Post("/scan", JWTProtected(), ScanWebsiteHandler)
	scan_app.Get("/pages", JWTProtected(), ListScannedPagesHandler)
	scan_app.Post("/pages/:pageId/deep-scan", JWTProtected(), DeepScanPageHandler)
	scan_app.Post("/deep-scan-all", JWTProtected(), DeepScanAllPendingHandler)

	listen_addres := fmt.Sprintf("%v:%v", viper.Get("api.listen.host"), viper.Get("api.listen.port"))
	if err := app.Listen(listen_addres); err != nil {
		apiLogger.Warn().Err(err).Msg("Error starting server")
	}
}
