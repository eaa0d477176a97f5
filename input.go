package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/session"
)

var directionKeys = []struct {
	dir  component.Direction
	keys []ebiten.Key
}{
	{component.DirectionForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{component.DirectionBackward, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{component.DirectionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{component.DirectionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// Input turns ebiten key and mouse state into session intents.
type Input struct {
	held     [4]bool
	looking  bool
	lastX    int
	lastY    int
	hasMouse bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update(s *session.Session) {
	for i, dk := range directionKeys {
		pressed := false
		for _, k := range dk.keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
				break
			}
		}
		if pressed != in.held[i] {
			in.held[i] = pressed
			s.OnDirectionalIntent(dk.dir, pressed)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.OnJumpRequest()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight) {
		s.OnDashRequest()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleGravityDirection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.SpawnCube()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.AdvanceToNextPortalConfiguration()
	}

	in.updateLook(s)
}

// updateLook feeds pointer motion while the cursor is captured. Tab toggles
// capture so the buttons stay clickable.
func (in *Input) updateLook(s *session.Session) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		in.looking = !in.looking
		in.hasMouse = false
		if in.looking {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && in.looking {
		in.looking = false
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if !in.looking {
		return
	}

	x, y := ebiten.CursorPosition()
	if in.hasMouse {
		if dx, dy := x-in.lastX, y-in.lastY; dx != 0 || dy != 0 {
			s.OnLookDelta(float64(dx), float64(dy))
		}
	}
	in.lastX, in.lastY = x, y
	in.hasMouse = true
}

func (in *Input) Looking() bool {
	return in.looking
}
