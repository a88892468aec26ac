// Package ebiten connects the debug overlay to an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini is not
// written.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Layer runs an Overlay inside an Ebiten game's Update/Draw/Layout calls.
type Layer struct {
	backend ImguiBackend
	overlay *debugui.Overlay
}

func NewLayer(backend ImguiBackend, overlay *debugui.Overlay) *Layer {
	return &Layer{backend: backend, overlay: overlay}
}

// Update builds this frame's ImGui windows. Call it from the game's Update.
func (l *Layer) Update() {
	l.backend.BeginFrame()
	l.overlay.Render()
	l.backend.EndFrame()
}

// Draw paints the overlay on top of screen.
func (l *Layer) Draw(screen *ebiten.Image) {
	l.backend.Draw(screen)
}

// Layout forwards the window size to ImGui.
func (l *Layer) Layout(width, height int) {
	l.backend.Layout(width, height)
}

// WantsKeyboard reports whether ImGui has keyboard focus.
func (l *Layer) WantsKeyboard() bool {
	return l.overlay.Input().WantCaptureKeyboard
}
