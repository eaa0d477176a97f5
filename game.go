package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/portalarena/common"
	"github.com/milk9111/portalarena/prefabs"
	"github.com/milk9111/portalarena/session"
	"go.uber.org/zap"
)

type Game struct {
	frames int
	debug  bool

	session *session.Session
	input   *Input
	ui      *ebitenui.UI
	view    *View
	log     *zap.Logger
	changes <-chan prefabs.Change
}

func NewGame(s *session.Session, logger *zap.Logger, changes <-chan prefabs.Change, debug bool) *Game {
	return &Game{
		debug:   debug,
		session: s,
		input:   NewInput(),
		ui:      NewHUDUI(s),
		view:    NewView(),
		log:     logger,
		changes: changes,
	}
}

func (g *Game) Update() error {
	g.frames++

	g.applyChanges()
	g.input.Update(g.session)
	g.ui.Update()
	g.session.Tick()

	return nil
}

// applyChanges drains pending prefab edits without blocking the frame.
func (g *Game) applyChanges() {
	for {
		select {
		case change, ok := <-g.changes:
			if !ok {
				g.changes = nil
				return
			}
			if err := prefabs.Apply(g.session, change); err != nil {
				g.log.Warn("prefab reload failed", zap.String("file", change.Name), zap.Error(err))
				continue
			}
			g.log.Info("prefab reloaded", zap.String("file", change.Name))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.session)
	g.view.DrawHUD(screen, g.hudLines())
	g.ui.Draw(screen)
}

func (g *Game) hudLines() []string {
	s := g.session
	tf := s.PlayerTransform()
	lines := []string{
		"Move: WASD | Jump: Space | Dash: Shift | Look: Mouse (Tab)",
		fmt.Sprintf("World: %s (%d/%d)", s.Portals().Configuration().Name, s.Portals().Current()+1, s.Portals().Len()),
		fmt.Sprintf("Dash: %s   Grounded: %t", s.DashPhase(), s.Grounded()),
		fmt.Sprintf("Cubes: %d/%d   Gravity: %.2f", s.Pool().Len(), s.Pool().Cap(), s.Engine().Gravity().Y()),
		fmt.Sprintf("Height: %.2f   FPS: %.1f", tf.Position.Y(), ebiten.ActualFPS()),
	}
	if g.debug {
		lines = append(lines,
			fmt.Sprintf("Frames: %d   Ticks: %d   Bodies: %d   Nodes: %d", g.frames, s.Ticks(), s.Engine().Len(), s.Scene().Len()),
			fmt.Sprintf("Pos: %.2f %.2f %.2f   Yaw: %.2f   Pitch: %.2f", tf.Position.X(), tf.Position.Y(), tf.Position.Z(), tf.Yaw, tf.Pitch),
		)
	}
	return lines
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
