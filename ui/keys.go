package ui

import "strings"

// Binding pairs a key label with the action it triggers.
type Binding struct {
	Key    string
	Action Action
}

// DefaultBindings is the layout every frontend uses.
var DefaultBindings = []Binding{
	{"Left", MoveLeft},
	{"Right", MoveRight},
	{"Down", SoftDrop},
	{"Up", Rotate},
	{"S", Start},
	{"P", Stop},
	{"R", Restart},
	{"Esc", Quit},
}

var actionHelp = map[Action]string{
	MoveLeft:  "move left",
	MoveRight: "move right",
	SoftDrop:  "drop one row",
	Rotate:    "rotate",
	Start:     "start / resume",
	Stop:      "pause",
	Restart:   "restart",
	Quit:      "quit",
}

// ActionForKey looks up the action bound to a key label. Single letters
// match case-insensitively.
func ActionForKey(bindings []Binding, key string) Action {
	for _, b := range bindings {
		if strings.EqualFold(b.Key, key) {
			return b.Action
		}
	}
	return None
}

// Help returns one "key  description" line per binding.
func Help(bindings []Binding) []string {
	width := 0
	for _, b := range bindings {
		width = max(width, len(b.Key))
	}

	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, b.Key+strings.Repeat(" ", width-len(b.Key)+2)+actionHelp[b.Action])
	}
	return lines
}
