package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/tick/ecs"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file; flags override its values.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create per world.")
	worldCount := flag.Int("worlds", 0, "The number of isolated worlds to drive in round-robin.")
	fixedEvery := flag.Int("fixed-every", 0, "Run the fixed-interval queue once per this many frame sweeps.")
	seed := flag.Int64("seed", 1, "PRNG seed for entity population.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Run.Duration = *duration
		case "entities":
			cfg.Run.Entities = *entityCount
		case "worlds":
			cfg.Run.Worlds = *worldCount
		case "fixed-every":
			cfg.Run.FixedEvery = *fixedEvery
		}
	})

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting ECS stress test",
		zap.Duration("duration", cfg.Run.Duration),
		zap.Int("entities", cfg.Run.Entities),
		zap.Int("worlds", cfg.Run.Worlds))

	// 1. Realize the worlds and queue the generated systems.
	registry := ecs.NewRegistry(ecs.WithLogger(logger))
	worlds := make([]*ecs.World, cfg.Run.Worlds)
	for i := range worlds {
		worlds[i] = registry.World(fmt.Sprintf("stress-%d", i))
		registerStressSystems(worlds[i])
	}

	// 2. Populate each world with random entities.
	rng := rand.New(rand.NewSource(*seed))
	for _, w := range worlds {
		for i := 0; i < cfg.Run.Entities; i++ {
			spawnStressEntity(w, rng)
		}
	}
	logger.Info("population complete",
		zap.Int("worlds", registry.WorldCount()),
		zap.Int("entities_per_world", cfg.Run.Entities))

	// 3. Drive the queues until the deadline.
	report := &Report{
		Duration:   cfg.Run.Duration,
		Entities:   cfg.Run.Entities,
		Worlds:     cfg.Run.Worlds,
		Components: stressComponentCount,
		Systems:    stressSystemCount,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
	deadline := startTime.Add(cfg.Run.Duration)
	var frame int64

	for time.Now().Before(deadline) {
		for _, w := range worlds {
			sweepStart := time.Now()
			res := w.RunQueue(ecs.Update)
			report.FrameSweep.Samples = append(report.FrameSweep.Samples, time.Since(sweepStart))
			report.TotalSweeps++
			report.TotalFaults += int64(len(res.Faults))

			if frame%int64(cfg.Run.FixedEvery) == 0 {
				sweepStart = time.Now()
				res = w.RunQueue(ecs.FixedUpdate)
				report.FixedSweep.Samples = append(report.FixedSweep.Samples, time.Since(sweepStart))
				report.TotalSweeps++
				report.TotalFaults += int64(len(res.Faults))
			}
		}
		frame++
	}

	report.TotalTime = time.Since(startTime)
	report.FrameSweep.Finalize()
	report.FixedSweep.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", zap.Int64("sweeps", report.TotalSweeps))

	// 4. Generate report to console.
	fmt.Println("\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
