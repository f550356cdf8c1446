package bootstrap

import (
	"hulunote-be/internal/config"
	"hulunote-be/internal/controller"
	"hulunote-be/internal/pkg/logger"
	"hulunote-be/internal/repository/unitofwork"
	"hulunote-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DatabaseController controller.IDatabaseController
	NoteController     controller.INoteController
	NavController      controller.INavController
	ImportController   controller.IImportController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Services
	resolverService := service.NewResolverService(uowFactory)
	databaseService := service.NewDatabaseService(uowFactory, resolverService)
	noteService := service.NewNoteService(uowFactory, resolverService)
	navService := service.NewNavService(uowFactory, resolverService)
	importService := service.NewImportService(uowFactory, resolverService, sysLogger)

	return &Container{
		DatabaseController: controller.NewDatabaseController(databaseService),
		NoteController:     controller.NewNoteController(noteService),
		NavController:      controller.NewNavController(navService),
		ImportController:   controller.NewImportController(importService),
		Logger:             sysLogger,
	}
}
