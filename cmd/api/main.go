package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	"alfredoptarigan/resume-ats/internal/server"
	"alfredoptarigan/resume-ats/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.Log.Level)
	logger.Info("✅ Config loaded successfully")

	// Initialize services
	pdfParser := services.NewPDFParserService()

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		logger.WithError(err).Fatal("❌ Failed to initialize Gemini AI")
	}
	logger.WithFields(logrus.Fields{
		"model":        cfg.Gemini.Model,
		"timeout":      cfg.Gemini.Timeout,
		"max_attempts": cfg.Gemini.MaxAttempts,
	}).Info("✅ Gemini AI initialized successfully")

	analyzerService := services.NewAnalyzerService(geminiService, pdfParser, cfg.Gemini, logger)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzerService, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := server.New(server.Options{
		Config:          cfg,
		AnalysisHandler: analysisHandler,
		Registry:        registry,
		AccessLog:       os.Stdout,
		BaseContext:     baseCtx,
	})
	if err != nil {
		logger.WithError(err).Fatal("❌ Failed to build server")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("🛑 Shutting down server...")
		cancel()
		if err := app.Shutdown(); err != nil {
			logger.WithError(err).Error("❌ Server forced to shutdown")
		}
	}()

	addr := cfg.Addr()
	logger.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		logger.WithError(err).Fatal("❌ Failed to start server")
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
