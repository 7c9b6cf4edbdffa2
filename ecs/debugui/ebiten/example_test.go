package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hive/ecs"
	"github.com/plus3/hive/ecs/debugui"
	debugui_ebiten "github.com/plus3/hive/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and steps the world with ImGui rendering.
type Game struct {
	rt      *ecs.Runtime
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before the step so render closures can emit widgets
	g.backend.BeginFrame()

	g.rt.Step(1.0 / 60.0)

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create an Ebiten window with the ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Hive Debug UI", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)

	rt := ecs.NewRuntime(registry)
	rt.Resources().Register(debugui.ImguiInputState{})

	// Spawn the debug windows plus a custom one
	debugui.SpawnDebugUI(rt.Store(), rt.Scheduler())
	id := rt.Store().CreateEntity()
	rt.Store().AddComponent(id, debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the world!")
			imgui.End()
		},
	})

	rt.Register(&debugui.ImguiSystem{}, 100)

	game := &Game{
		rt:      rt,
		backend: &debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
