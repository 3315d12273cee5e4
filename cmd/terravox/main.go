package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"terravox/internal/config"
	"terravox/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := glfw.Init(); err != nil {
		logger.Log.Fatal("failed to initialize GLFW", zap.Error(err))
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg)
	if err != nil {
		logger.Log.Fatal("failed to create window", zap.Error(err))
	}

	components, err := setupGame(window, cfg)
	if err != nil {
		logger.Log.Fatal("failed to set up game", zap.Error(err))
	}
	defer components.Renderer.Release()

	loop := NewGameLoop(window, components, cfg.Graphics.FPSLimit)
	loop.Run()
}
