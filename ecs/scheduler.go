package ecs

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Priority       int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type registeredSystem struct {
	system   System
	priority int

	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in priority order, lower priorities
// first. Systems with equal priority run in registration order.
type Scheduler struct {
	store      *Store
	resources  *ResourceRegistry
	events     *EventBus
	dispatcher *CommandDispatcher
	systems    []*registeredSystem
	logger     zerolog.Logger
}

// NewScheduler creates a scheduler for the given store. The resource
// registry, event bus, and dispatcher are threaded into every UpdateFrame;
// pass nil for collaborators the host does not use.
func NewScheduler(store *Store, resources *ResourceRegistry, events *EventBus, dispatcher *CommandDispatcher) *Scheduler {
	return &Scheduler{
		store:      store,
		resources:  resources,
		events:     events,
		dispatcher: dispatcher,
		logger:     zerolog.Nop(),
	}
}

// SetLogger installs a logger for registration and step diagnostics.
func (s *Scheduler) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// Register adds a system with the given priority and initializes its Query
// and Resource fields.
func (s *Scheduler) Register(system System, priority int) {
	s.initializeFields(system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	entry := &registeredSystem{
		system:      system,
		priority:    priority,
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	}
	s.systems = append(s.systems, entry)

	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].priority < s.systems[j].priority
	})

	s.logger.Debug().
		Str("system", entry.name).
		Int("priority", priority).
		Msg("system registered")
}

// initializeFields wires Query and Resource struct fields so systems can
// declare their data access declaratively.
func (s *Scheduler) initializeFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}
	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()

		if strings.HasPrefix(typeName, "Query[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Query field")
			}
			initMethod.Call([]reflect.Value{reflect.ValueOf(s.store)})
			continue
		}

		if strings.HasPrefix(typeName, "Resource[") {
			if s.resources == nil {
				panic("system declares a Resource field but the scheduler has no resource registry")
			}
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on Resource field")
			}
			initMethod.Call([]reflect.Value{reflect.ValueOf(s.resources)})
			continue
		}
	}
}

// Once executes all registered systems once with the given delta time, then
// flushes the frame's command buffer into the store.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.store, s.events, s.dispatcher)

	for _, entry := range s.systems {
		start := time.Now()
		entry.system.Update(frame)
		duration := time.Since(start)

		entry.executionCount++
		entry.lastDuration = duration
		entry.totalDuration += duration
		if duration < entry.minDuration {
			entry.minDuration = duration
		}
		if duration > entry.maxDuration {
			entry.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.store)
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution, in run order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, entry := range s.systems {
		avgDuration := time.Duration(0)
		if entry.executionCount > 0 {
			avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			Priority:       entry.priority,
			ExecutionCount: entry.executionCount,
			MinDuration:    entry.minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		totalExecs += entry.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
