package main

import (
	"github.com/xw1nchester/stylequiz-backend/internal/app"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
	"go.uber.org/zap"
)

//	@title		StyleQuiz API
//	@version	1.0

// @BasePath	/api
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address))

	application.MustRun()
}

func setupLogger(env string) *zap.Logger {
	if env == "prod" {
		log, _ := zap.NewProduction()
		return log
	}

	log, _ := zap.NewDevelopment()
	return log
}
