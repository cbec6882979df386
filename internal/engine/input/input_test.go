package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKeys(t *testing.T) {
	in := New()

	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionOrbitLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionOrbitRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionOrbitUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionOrbitDown},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"plus", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), ActionZoomIn},
		{"equals", tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), ActionZoomIn},
		{"minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), ActionZoomOut},
		{"bounds", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), ActionToggleBounds},
		{"culling", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionToggleCulling},
		{"status", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionToggleStatus},
		{"lighting", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionToggleLighting},
		{"normals", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionToggleNormals},
		{"fit", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), ActionFit},
		{"clear", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionClearSelection},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, in.Translate(tt.ev).Action)
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	in := New()

	e := in.Translate(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	assert.Equal(t, Event{Action: ActionPick, MouseX: 12, MouseY: 7}, e)

	assert.Equal(t, ActionZoomIn, in.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)).Action)
	assert.Equal(t, ActionZoomOut, in.Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)).Action)
	assert.Equal(t, ActionNone, in.Translate(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone)).Action)
}

func TestTranslateResize(t *testing.T) {
	e := New().Translate(tcell.NewEventResize(100, 40))
	assert.Equal(t, Event{Action: ActionResize, Width: 100, Height: 40}, e)
}

func TestTranslateOther(t *testing.T) {
	assert.Equal(t, Event{}, New().Translate(tcell.NewEventInterrupt(nil)))
}

func TestBind(t *testing.T) {
	in := New()

	in.Bind('z', ActionZoomIn)
	assert.Equal(t, ActionZoomIn, in.Translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)).Action)

	in.Bind('q', ActionNone)
	assert.Equal(t, ActionNone, in.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)).Action)

	in.BindKey(tcell.KeyF1, ActionToggleStatus)
	assert.Equal(t, ActionToggleStatus, in.Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)).Action)

	in.BindKey(tcell.KeyEscape, ActionNone)
	assert.Equal(t, ActionNone, in.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)).Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "toggle-lighting", ActionToggleLighting.String())
	assert.Equal(t, "clear-selection", ActionClearSelection.String())
	assert.Equal(t, "unknown", Action(99).String())
}
