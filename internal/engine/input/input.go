// Package input translates terminal events into viewer actions.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action is what the viewer should do in response to an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionPick
	ActionToggleBounds
	ActionToggleCulling
	ActionToggleStatus
	ActionToggleLighting
	ActionToggleNormals
	ActionFit
	ActionClearSelection
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionQuit:           "quit",
	ActionResize:         "resize",
	ActionOrbitLeft:      "orbit-left",
	ActionOrbitRight:     "orbit-right",
	ActionOrbitUp:        "orbit-up",
	ActionOrbitDown:      "orbit-down",
	ActionZoomIn:         "zoom-in",
	ActionZoomOut:        "zoom-out",
	ActionPick:           "pick",
	ActionToggleBounds:   "toggle-bounds",
	ActionToggleCulling:  "toggle-culling",
	ActionToggleStatus:   "toggle-status",
	ActionToggleLighting: "toggle-lighting",
	ActionToggleNormals:  "toggle-normals",
	ActionFit:            "fit",
	ActionClearSelection: "clear-selection",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Event is a translated input event. Width and Height are set for
// ActionResize, MouseX and MouseY for ActionPick.
type Event struct {
	Action Action
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input maps keys and runes to actions.
type Input struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// New creates an input handler with the default bindings.
func New() *Input {
	i := &Input{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}

	i.BindKey(tcell.KeyEscape, ActionQuit)
	i.BindKey(tcell.KeyCtrlC, ActionQuit)
	i.BindKey(tcell.KeyLeft, ActionOrbitLeft)
	i.BindKey(tcell.KeyRight, ActionOrbitRight)
	i.BindKey(tcell.KeyUp, ActionOrbitUp)
	i.BindKey(tcell.KeyDown, ActionOrbitDown)

	for r, a := range map[rune]Action{
		'q': ActionQuit,
		'+': ActionZoomIn,
		'=': ActionZoomIn,
		'-': ActionZoomOut,
		'_': ActionZoomOut,
		'b': ActionToggleBounds,
		'c': ActionToggleCulling,
		'h': ActionToggleStatus,
		'l': ActionToggleLighting,
		'n': ActionToggleNormals,
		'f': ActionFit,
		'x': ActionClearSelection,
	} {
		i.Bind(r, a)
	}
	return i
}

// Bind maps a printable key to an action. ActionNone removes the binding.
func (i *Input) Bind(r rune, a Action) {
	if a == ActionNone {
		delete(i.runes, r)
		return
	}
	i.runes[r] = a
}

// BindKey maps a special key to an action. ActionNone removes the binding.
func (i *Input) BindKey(k tcell.Key, a Action) {
	if a == ActionNone {
		delete(i.keys, k)
		return
	}
	i.keys[k] = a
}

// Translate converts a tcell event. Unbound keys and mouse motion yield
// ActionNone.
func (i *Input) Translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return Event{Action: i.runes[e.Rune()]}
		}
		return Event{Action: i.keys[e.Key()]}

	case *tcell.EventMouse:
		x, y := e.Position()
		switch btn := e.Buttons(); {
		case btn&tcell.Button1 != 0:
			return Event{Action: ActionPick, MouseX: x, MouseY: y}
		case btn&tcell.WheelUp != 0:
			return Event{Action: ActionZoomIn}
		case btn&tcell.WheelDown != 0:
			return Event{Action: ActionZoomOut}
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Action: ActionResize, Width: w, Height: h}
	}
	return Event{}
}
