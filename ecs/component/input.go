package component

// Direction is a movement intent.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Input stores the held directional intents for an entity.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Set records a press or release. Unknown directions are ignored.
func (in *Input) Set(d Direction, pressed bool) {
	switch d {
	case DirectionForward:
		in.Forward = pressed
	case DirectionBackward:
		in.Backward = pressed
	case DirectionLeft:
		in.Left = pressed
	case DirectionRight:
		in.Right = pressed
	}
}

var InputComponent = NewComponent[Input]()
