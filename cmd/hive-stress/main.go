package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/hive/ecs"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file; flags override its values.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 100, "Entities destroyed and respawned per step.")
	snapshotPath := flag.String("snapshot", "", "Write a JSON snapshot of the final world state to this path.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "entities":
			cfg.Entities = *entityCount
		case "churn":
			cfg.Churn = *churn
		}
	})

	log.Println("Starting hive stress test...")

	registry := ecs.NewComponentRegistry()
	registerStressComponents(registry)

	rt := ecs.NewRuntime(registry)
	registerStressSystems(rt, cfg)

	log.Printf("Populating store with %d entities...\n", cfg.Entities)
	for i := 0; i < cfg.Entities; i++ {
		spawnRandomEntity(rt.Store())
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Churn:          cfg.Churn,
		GCPauseMetrics: *gcPauseMetrics,
		StepTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", cfg.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	startTime := time.Now()
	lastStepTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastStepTime)
			lastStepTime = time.Now()

			stepStart := time.Now()
			rt.Step(float64(deltaTime) / float64(time.Second))
			stepDuration := time.Since(stepStart)

			report.StepTime.Samples = append(report.StepTime.Samples, stepDuration)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalSteps = rt.Steps()
	report.FinalEntities = rt.Store().EntityCount()
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	if *snapshotPath != "" {
		if err := writeSnapshot(rt, registry, *snapshotPath); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Snapshot written to %s\n", *snapshotPath)
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func writeSnapshot(rt *ecs.Runtime, registry *ecs.ComponentRegistry, path string) error {
	codec := ecs.NewSnapshotCodec(registry)
	tree, err := rt.Snapshot(codec)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tree.WriteJSON(f)
}

func spawnRandomEntity(store *ecs.Store) ecs.EntityId {
	id := store.CreateEntity()
	store.AddComponent(id, Position{X: rand.Float64() * 1000, Y: rand.Float64() * 1000})
	if rand.Intn(2) == 0 {
		store.AddComponent(id, Velocity{DX: rand.Float64()*2 - 1, DY: rand.Float64()*2 - 1})
	}
	if rand.Intn(3) == 0 {
		store.AddComponent(id, Health{Current: 100, Max: 100})
	}
	if rand.Intn(5) == 0 {
		store.AddComponent(id, Tag(fmt.Sprintf("entity-%d", id)))
	}
	return id
}
