package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*models.AnalysisResponse, error)
}

type AnalysisRequest struct {
	Template       PromptTemplate
	Document       []byte
	JobDescription *string
}

type analyzerService struct {
	geminiService GeminiService
	pdfParser     PDFParserService
	timeout       time.Duration
	maxAttempts   int
	retryDelay    time.Duration
	logger        logrus.FieldLogger
}

func NewAnalyzerService(
	geminiService GeminiService,
	pdfParser PDFParserService,
	cfg config.GeminiConfig,
	logger logrus.FieldLogger,
) AnalyzerService {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &analyzerService{
		geminiService: geminiService,
		pdfParser:     pdfParser,
		timeout:       cfg.Timeout,
		maxAttempts:   maxAttempts,
		retryDelay:    cfg.RetryDelay,
		logger:        logger,
	}
}

// Analyze runs one request through extract, prompt, generate. It returns
// ErrJobDescriptionRequired, *DocumentParseError or *GenerationError.
func (a *analyzerService) Analyze(ctx context.Context, req AnalysisRequest) (*models.AnalysisResponse, error) {
	log := a.logger.WithField("analysis_type", req.Template.Label)

	if req.Template.RequiresJobDescription && req.JobDescription == nil {
		return nil, ErrJobDescriptionRequired
	}

	log.Debug("📄 Parsing resume...")
	content, err := a.pdfParser.ExtractText(req.Document)
	if err != nil {
		log.WithError(err).Warn("⚠️  Failed to parse resume")
		return nil, &DocumentParseError{Err: err}
	}

	prompt := req.Template.Build(content.Text, req.JobDescription)
	log.WithFields(logrus.Fields{
		"pages":        content.PageCount,
		"resume_chars": len(content.Text),
		"prompt_chars": len(prompt),
	}).Info("🤖 Generating analysis with LLM...")

	result, err := a.generate(ctx, log, content.Text, prompt)
	if err != nil {
		log.WithError(err).Error("❌ Analysis generation failed")
		return nil, &GenerationError{Err: err}
	}

	log.WithField("result_chars", len(result)).Info("✅ Analysis completed")

	return &models.AnalysisResponse{
		AnalysisType:   req.Template.Label,
		AnalysisResult: result,
	}, nil
}

func (a *analyzerService) generate(ctx context.Context, log logrus.FieldLogger, text, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		result, err := a.generateOnce(ctx, text, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if ctx.Err() != nil {
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		}

		if attempt < a.maxAttempts {
			log.WithError(err).WithField("attempt", attempt).Warn("⚠️  Generation attempt failed. Retrying...")

			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(a.retryDelay):
			}
		}
	}

	if a.maxAttempts > 1 {
		return "", fmt.Errorf("failed after %d attempts: %w", a.maxAttempts, lastErr)
	}
	return "", lastErr
}

func (a *analyzerService) generateOnce(ctx context.Context, text, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	return a.geminiService.GenerateContent(ctx, text, prompt)
}
