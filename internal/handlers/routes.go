package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/services"
)

const (
	AppName    = "ResumeATS Pro API"
	AppVersion = "1.0.0"
)

// RegisterRoutes attaches the analysis routes plus service info and health.
func RegisterRoutes(app *fiber.App, analysisHandler *AnalysisHandler) {
	app.Get("/", HandleRoot)
	app.Get("/health", HandleHealth)

	analysisHandler.Register(app)
}

func HandleRoot(c *fiber.Ctx) error {
	endpoints := []string{}
	for _, tpl := range services.PromptTemplates() {
		endpoints = append(endpoints, "POST "+tpl.Path())
	}

	return c.JSON(fiber.Map{
		"message":     AppName,
		"description": "API for Resume Analysis and ATS Optimization",
		"version":     AppVersion,
		"endpoints":   endpoints,
	})
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}
