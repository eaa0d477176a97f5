package component

type Player struct {
	MoveSpeed float64
	DashSpeed float64
	JumpSpeed float64
	// LookSensitivity is radians per pixel of pointer motion.
	LookSensitivity float64
}

var PlayerComponent = NewComponent[Player]()

// Jumper tracks whether a jump is allowed. Any contact involving the body
// sets Grounded; a jump clears it.
type Jumper struct {
	Grounded bool
}

var JumperComponent = NewComponent[Jumper]()
