// Package debugui draws Dear ImGui windows over a running game: frame
// timing, scheduler sources, engine counters and lifecycle buttons.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item is one overlay window. Render is called once per ImGui frame.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Frontends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects the items drawn each frame.
type Overlay struct {
	items []Item
	input InputState
}

func NewOverlay(items ...Item) *Overlay {
	return &Overlay{items: items}
}

// Render refreshes the input state and draws every item. It must run
// between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// Input returns the capture state observed during the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}
