package bootstrap

import (
	"log"

	"term-catalog-be/internal/config"
	"term-catalog-be/internal/controller"
	"term-catalog-be/internal/pkg/logger"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/internal/service"
	"term-catalog-be/pkg/airtable"
	"term-catalog-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	TermController        controller.ITermController
	AuditController       controller.IAuditController
	KeywordController     controller.IKeywordController
	GenerationController  controller.IGenerationController
	SyncController        controller.ISyncController
	LegislationController controller.ILegislationController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. External Clients
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	remote := airtable.New(cfg.Airtable.BaseID, cfg.Airtable.TableName, cfg.Airtable.APIKey)

	// 3. Services
	termService := service.NewTermService(uowFactory)
	auditService := service.NewAuditService(uowFactory)
	keywordService := service.NewKeywordService(uowFactory)
	generationService := service.NewGenerationService(uowFactory, llmProvider, cfg.Ai)
	syncService := service.NewSyncService(uowFactory, remote, sysLogger)
	legislationService := service.NewLegislationService(uowFactory, llmProvider, cfg.Ai)

	// 4. Controllers
	return &Container{
		TermController:        controller.NewTermController(termService),
		AuditController:       controller.NewAuditController(auditService),
		KeywordController:     controller.NewKeywordController(keywordService),
		GenerationController:  controller.NewGenerationController(generationService),
		SyncController:        controller.NewSyncController(syncService),
		LegislationController: controller.NewLegislationController(legislationService),
	}
}
