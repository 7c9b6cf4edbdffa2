package main

import (
	"math/rand"

	"github.com/plus3/hive/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current int
	Max     int
}

type Tag string

func registerStressComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Tag](registry)
}

func registerStressSystems(rt *ecs.Runtime, cfg Config) {
	rt.Register(&movementSystem{}, 0)
	rt.Register(&decaySystem{}, 10)
	rt.Register(&churnSystem{churn: cfg.Churn}, 20)
}

type movementSystem struct {
	Moving ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (m *movementSystem) Update(frame *ecs.UpdateFrame) {
	for item := range m.Moving.Values() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime
	}
}

type decaySystem struct {
	Mortal ecs.Query[struct{ *Health }]
}

func (d *decaySystem) Update(frame *ecs.UpdateFrame) {
	for id, item := range d.Mortal.Iter() {
		item.Health.Current--
		if item.Health.Current <= 0 {
			frame.Commands.Destroy(id)
		}
	}
}

// churnSystem destroys and respawns a slice of the population every step to
// exercise id recycling under load.
type churnSystem struct {
	churn int
}

func (c *churnSystem) Update(frame *ecs.UpdateFrame) {
	destroyed := 0
	for id := range frame.Store.QueryEntities(ecs.KindOf[Position]()) {
		if destroyed >= c.churn {
			break
		}
		if rand.Intn(10) == 0 {
			frame.Commands.Destroy(id)
			destroyed++
		}
	}

	for i := 0; i < destroyed; i++ {
		frame.Commands.Spawn(
			Position{X: rand.Float64() * 1000, Y: rand.Float64() * 1000},
			Velocity{DX: rand.Float64()*2 - 1, DY: rand.Float64()*2 - 1},
		)
	}
}
