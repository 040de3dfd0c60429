package main

import (
	"fmt"
	"os"

	"github.com/skyops/fuelrecon/internal/auth"
	"github.com/skyops/fuelrecon/internal/config"
	"github.com/skyops/fuelrecon/internal/db"
	"github.com/skyops/fuelrecon/internal/excel"
	httphandler "github.com/skyops/fuelrecon/internal/http"
	"github.com/skyops/fuelrecon/internal/http/middleware"
	"github.com/skyops/fuelrecon/internal/logger"
	"github.com/skyops/fuelrecon/internal/pdf"
	"github.com/skyops/fuelrecon/internal/repository"
	"github.com/skyops/fuelrecon/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	supplierRepo := repository.NewSupplierRepository(database)
	locationRepo := repository.NewLocationRepository(database)
	contractRepo := repository.NewContractRepository(database)
	tariffRepo := repository.NewTariffRepository(database)
	recordRepo := repository.NewRecordRepository(database)
	queryRepo := repository.NewQueryRepository(database)
	uploadRepo := repository.NewUploadRepository(database)

	excelGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()

	masterDataService := service.NewMasterDataService(supplierRepo, locationRepo, contractRepo)
	tariffService := service.NewTariffService(tariffRepo, contractRepo, supplierRepo, locationRepo)
	reconService := service.NewReconService(recordRepo, queryRepo, cfg)
	uploadService := service.NewUploadService(uploadRepo, supplierRepo, cfg)
	exportService := service.NewExportService(recordRepo, tariffRepo, supplierRepo, locationRepo, excelGenerator, pdfGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(masterDataService, tariffService, reconService, uploadService, exportService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fuel reconciliation service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
