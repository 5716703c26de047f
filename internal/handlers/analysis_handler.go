package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-ats/internal/middleware"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

const (
	fileField           = "file"
	jobDescriptionField = "job_description"
)

type AnalysisHandler struct {
	analyzer services.AnalyzerService
	logger   logrus.FieldLogger
}

func NewAnalysisHandler(analyzer services.AnalyzerService, logger logrus.FieldLogger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Register mounts one POST route per prompt template.
func (h *AnalysisHandler) Register(router fiber.Router) {
	for _, tpl := range services.PromptTemplates() {
		router.Post(tpl.Path(), h.HandleAnalysis(tpl))
	}
}

// HandleAnalysis handles POST /<template>/ with a multipart body carrying
// "file" and an optional "job_description".
func (h *AnalysisHandler) HandleAnalysis(tpl services.PromptTemplate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile(fileField)
		if err != nil {
			return writeDetail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("%s: field required", fileField))
		}

		var jobDescription *string
		if jd := c.FormValue(jobDescriptionField); jd != "" {
			jobDescription = &jd
		}
		if tpl.RequiresJobDescription && jobDescription == nil {
			return writeDetail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("%s: field required", jobDescriptionField))
		}

		src, err := fileHeader.Open()
		if err != nil {
			return writeAnalysisError(c, &services.DocumentParseError{Err: err})
		}
		defer src.Close()

		document, err := io.ReadAll(src)
		if err != nil {
			return writeAnalysisError(c, &services.DocumentParseError{Err: err})
		}

		h.logger.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromCtx(c),
			"route":      tpl.Path(),
			"filename":   fileHeader.Filename,
			"size":       fileHeader.Size,
		}).Info("📥 Resume received")

		result, err := h.analyzer.Analyze(c.UserContext(), services.AnalysisRequest{
			Template:       tpl,
			Document:       document,
			JobDescription: jobDescription,
		})
		if err != nil {
			return writeAnalysisError(c, err)
		}

		return c.JSON(result)
	}
}

func writeAnalysisError(c *fiber.Ctx, err error) error {
	var parseErr *services.DocumentParseError
	var genErr *services.GenerationError

	switch {
	case errors.Is(err, services.ErrJobDescriptionRequired):
		return writeDetail(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("%s: field required", jobDescriptionField))
	case errors.As(err, &parseErr):
		return writeDetail(c, fiber.StatusBadRequest, parseErr.Error())
	case errors.As(err, &genErr):
		return writeDetail(c, fiber.StatusInternalServerError, genErr.Error())
	default:
		return writeDetail(c, fiber.StatusInternalServerError, err.Error())
	}
}

func writeDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{Detail: detail})
}
