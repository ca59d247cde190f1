package input

import (
	"reflect"
	"testing"
)

func TestUpdateCommands(t *testing.T) {
	in := New(nil)

	quit := in.Update([]Event{
		{Type: EventKeyDown, Key: Key5},
		{Type: EventKeyUp, Key: Key5},
		{Type: EventKeyDown, Key: KeyF},
		{Type: EventKeyDown, Key: 200},
	})
	if quit {
		t.Error("quit without a quit event")
	}
	want := []Command{CommandMap, CommandToggleFLIR}
	if got := in.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
	if !in.Has(CommandToggleFLIR) || in.Has(CommandCockpit) {
		t.Error("Has disagrees with Commands")
	}

	// Commands do not carry over
	in.Update(nil)
	if len(in.Commands()) != 0 {
		t.Errorf("stale commands %v", in.Commands())
	}
}

func TestUpdateQuit(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{"window closed", []Event{{Type: EventQuit}}, true},
		{"escape", []Event{{Type: EventKeyDown, Key: KeyEscape}}, true},
		{"escape released", []Event{{Type: EventKeyUp, Key: KeyEscape}}, false},
		{"nothing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(nil).Update(tt.events); got != tt.want {
				t.Errorf("Update() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResized(t *testing.T) {
	in := New(nil)
	in.Update([]Event{{Type: EventWindowResize, Width: 640, Height: 480}})
	if w, h, ok := in.Resized(); !ok || w != 640 || h != 480 {
		t.Errorf("Resized() = %d, %d, %v, want 640, 480, true", w, h, ok)
	}

	in.Update(nil)
	if _, _, ok := in.Resized(); ok {
		t.Error("resize reported twice")
	}
}

func TestCustomBindings(t *testing.T) {
	in := New(Bindings{KeyG: CommandQuit})
	if !in.Update([]Event{{Type: EventKeyDown, Key: KeyG}}) {
		t.Error("rebound quit key ignored")
	}
	if in.Update([]Event{{Type: EventKeyDown, Key: KeyEscape}}) {
		t.Error("unbound escape quit")
	}
}

func TestCommandString(t *testing.T) {
	if got := CommandZoomIn.String(); got != "zoom_in" {
		t.Errorf("String() = %q, want zoom_in", got)
	}
	if got := Command(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
