package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the HTML pages and the JSON API on app.
func Register(app *fiber.App, rank *RankHandler, skills *SkillsHandler) {
	app.Get("/", rank.HandleIndex)
	app.Post("/rank", rank.HandleRankPage)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/rank", rank.HandleRank)
	api.Get("/skills", skills.HandleList)
	api.Post("/skills/extract", skills.HandleExtract)
}

// ErrorHandler renders every error returned by a handler as {error, code}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
