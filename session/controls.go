package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/scene"
	"go.uber.org/zap"
)

// ToggleGravityDirection flips the vertical gravity and returns the new
// value.
func (s *Session) ToggleGravityDirection() float64 {
	g := s.engine.Gravity()
	g[1] = -g[1]
	s.engine.SetGravity(g)
	s.log.Info("gravity toggled", zap.Float64("gravity_y", g.Y()))
	return g.Y()
}

// AdvanceToNextPortalConfiguration swaps every portal for those of the next
// configuration, wrapping around, and returns the new index.
func (s *Session) AdvanceToNextPortalConfiguration() int {
	idx := s.portals.Next()
	s.rebuildPortalNodes()
	s.log.Info("portal configuration loaded",
		zap.Int("index", idx),
		zap.String("name", s.portals.Configuration().Name),
		zap.Int("portals", len(s.portals.Portals())),
	)
	return idx
}

// ReplacePortalConfigurations hot swaps the configuration list. On error
// the current portals are left untouched.
func (s *Session) ReplacePortalConfigurations(configs []portal.Configuration) error {
	if err := s.portals.Replace(configs); err != nil {
		s.log.Warn("portal reload rejected", zap.Error(err))
		return fmt.Errorf("session: replace portals: %w", err)
	}
	s.rebuildPortalNodes()
	s.log.Info("portal configurations reloaded",
		zap.Int("configurations", s.portals.Len()),
		zap.Int("index", s.portals.Current()),
	)
	return nil
}

func (s *Session) rebuildPortalNodes() {
	for _, id := range s.portalNodes {
		s.graph.Remove(id)
	}
	s.portalNodes = s.portalNodes[:0]

	for _, p := range s.portals.Portals() {
		d := 2 * p.Radius
		s.portalNodes = append(s.portalNodes, s.graph.Add(scene.Node{
			Kind:     scene.NodeRing,
			Position: p.Position,
			Yaw:      p.Facing,
			Size:     mgl64.Vec3{d, d, 0.1},
			Color:    p.Color,
		}))
	}
}
