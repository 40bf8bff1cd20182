// Package main runs the soldier demo: an animated character that pauses
// and resumes its walk when clicked.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepick/internal/app"
	"github.com/Faultbox/scenepick/internal/assets"
	"github.com/Faultbox/scenepick/internal/config"
	"github.com/Faultbox/scenepick/internal/demo"
	"github.com/Faultbox/scenepick/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if path := config.SavePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("config written to %s\n", path)
		return
	}
	cfg.Window.Title = "scenepick: soldier"

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== scenepick soldier ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	models := assets.NewManager()
	defer models.Close()
	for _, dir := range cfg.Assets.Dirs {
		if err := models.AddDir(dir); err != nil {
			logger.Warn("skipping asset dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	shell, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer shell.Close()

	if err := shell.Run(demo.NewSoldier(cfg, models, logger.Named("soldier"))); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
