// Package ui holds the pieces every frontend shares: the logical actions a
// key can trigger, how they map onto a controller, and how elapsed time is
// shown.
package ui

import (
	"fmt"
	"time"
)

// Action is a logical input, independent of any key or device.
type Action int

const (
	None Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	Start
	Stop
	Restart
	Quit
)

var actionNames = [...]string{"None", "MoveLeft", "MoveRight", "SoftDrop", "Rotate", "Start", "Stop", "Restart", "Quit"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Target is what actions are applied to. *tetris.Controller satisfies it.
type Target interface {
	Start()
	Stop()
	Restart()
	MoveLeft()
	MoveRight()
	SoftDrop()
	Rotate()
}

// Apply performs a on t. Quit and None are left to the caller and report
// false, as does any unknown action.
func Apply(t Target, a Action) bool {
	switch a {
	case MoveLeft:
		t.MoveLeft()
	case MoveRight:
		t.MoveRight()
	case SoftDrop:
		t.SoftDrop()
	case Rotate:
		t.Rotate()
	case Start:
		t.Start()
	case Stop:
		t.Stop()
	case Restart:
		t.Restart()
	default:
		return false
	}
	return true
}

// FormatElapsed renders d as MM:SS. Minutes are not wrapped into hours, so
// an hour and a minute reads "61:00". Negative durations show as "00:00".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
