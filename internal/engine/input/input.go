// Package input turns window events into viewer commands.
//
// Keys are SDL scancodes; the window translates SDL events into Events so
// this package builds without cgo.
package input

// EventType is the kind of a window event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is an SDL scancode.
type Key int32

// Scancodes of the default bindings.
const (
	KeyA        Key = 4
	KeyF        Key = 9
	KeyG        Key = 10
	KeyH        Key = 11
	KeyM        Key = 16
	KeyP        Key = 19
	KeyS        Key = 22
	Key1        Key = 30
	Key2        Key = 31
	Key3        Key = 32
	Key4        Key = 33
	Key5        Key = 34
	KeyEscape   Key = 41 // SDL_SCANCODE_ESCAPE
	KeyMinus    Key = 45
	KeyEquals   Key = 46
	KeyPageUp   Key = 75
	KeyPageDown Key = 78
)

// Event is a processed window event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Command is a viewer action bound to a key.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandCockpit
	CommandSpot
	CommandTower
	CommandHoist
	CommandMap
	CommandToggleFLIR
	CommandToggleAtmosphere
	CommandToggleSmoke
	CommandVisibilityUp
	CommandVisibilityDown
	CommandZoomIn
	CommandZoomOut
	CommandGroundProbe
	CommandScreenshot
)

var commandNames = [...]string{
	CommandNone:             "none",
	CommandQuit:             "quit",
	CommandCockpit:          "cockpit",
	CommandSpot:             "spot",
	CommandTower:            "tower",
	CommandHoist:            "hoist",
	CommandMap:              "map",
	CommandToggleFLIR:       "toggle_flir",
	CommandToggleAtmosphere: "toggle_atmosphere",
	CommandToggleSmoke:      "toggle_smoke",
	CommandVisibilityUp:     "visibility_up",
	CommandVisibilityDown:   "visibility_down",
	CommandZoomIn:           "zoom_in",
	CommandZoomOut:          "zoom_out",
	CommandGroundProbe:      "ground_probe",
	CommandScreenshot:       "screenshot",
}

func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Bindings maps keys to commands.
type Bindings map[Key]Command

// DefaultBindings returns the stock key map.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape:   CommandQuit,
		Key1:        CommandCockpit,
		Key2:        CommandSpot,
		Key3:        CommandTower,
		Key4:        CommandHoist,
		Key5:        CommandMap,
		KeyM:        CommandMap,
		KeyF:        CommandToggleFLIR,
		KeyA:        CommandToggleAtmosphere,
		KeyS:        CommandToggleSmoke,
		KeyPageUp:   CommandVisibilityUp,
		KeyPageDown: CommandVisibilityDown,
		KeyEquals:   CommandZoomIn,
		KeyMinus:    CommandZoomOut,
		KeyG:        CommandGroundProbe,
		KeyP:        CommandScreenshot,
	}
}

// Input collects the commands of one frame.
type Input struct {
	bindings Bindings
	commands []Command
	resized  bool
	width    int
	height   int
}

// New creates an input handler. Nil bindings use DefaultBindings.
func New(b Bindings) *Input {
	if b == nil {
		b = DefaultBindings()
	}
	return &Input{
		bindings: b,
		commands: make([]Command, 0, 8),
	}
}

// Update converts the events of a frame to commands.
// Returns true if the viewer should quit.
func (i *Input) Update(events []Event) bool {
	i.commands = i.commands[:0] // Clear previous commands
	i.resized = false

	quit := false
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			quit = true
		case EventWindowResize:
			i.resized = true
			i.width, i.height = e.Width, e.Height
		case EventKeyDown:
			cmd, ok := i.bindings[e.Key]
			if !ok {
				continue
			}
			if cmd == CommandQuit {
				quit = true
			}
			i.commands = append(i.commands, cmd)
		}
	}
	return quit
}

// Commands returns the commands from the last Update in event order.
func (i *Input) Commands() []Command {
	return i.commands
}

// Resized returns the last window size seen by Update, if any.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}

// Has checks if a command was issued this frame.
func (i *Input) Has(cmd Command) bool {
	for _, c := range i.commands {
		if c == cmd {
			return true
		}
	}
	return false
}
