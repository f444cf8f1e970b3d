package main

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/app"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/config"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
