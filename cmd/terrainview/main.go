// Package main is the entry point for the terrain viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/config"
	"github.com/Faultbox/terrainview/internal/engine/terrain"
	"github.com/Faultbox/terrainview/internal/logger"
	"github.com/Faultbox/terrainview/internal/viewer"
	"github.com/Faultbox/terrainview/pkg/noise"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Terrain Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("path", path))
		return 0
	}

	mesh, err := generate(cfg)
	if err != nil {
		logger.Error("terrain generation failed", zap.Error(err))
		return 1
	}

	v, err := viewer.New(cfg, mesh)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}

// generate builds the terrain mesh before any window exists.
func generate(cfg *config.Config) (*terrain.Mesh, error) {
	src, err := noise.New(cfg.Noise.Algorithm, cfg.Noise.Seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mesh, err := terrain.Generate(
		cfg.Terrain.GridSize,
		cfg.Terrain.Scale,
		cfg.Terrain.Amplitude,
		src,
		cfg.Noise.Params(),
	)
	if err != nil {
		return nil, err
	}

	center := mesh.Bounds.Center()
	logger.Named("terrain").Info("mesh generated",
		zap.String("noise", cfg.Noise.Algorithm),
		zap.Int64("seed", cfg.Noise.Seed),
		zap.Int("size", mesh.Size),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("min_height", mesh.Bounds.Min[1]),
		zap.Float32("max_height", mesh.Bounds.Max[1]),
		zap.Float32s("center", center[:]),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mesh, nil
}
