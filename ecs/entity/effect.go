package entity

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/scene"
)

// NewDashEffect places a short lived ring at pos facing yaw. The TTL system
// removes it at until.
func NewDashEffect(w *ecs.World, sc scene.Scene, pos mgl64.Vec3, yaw, diameter float64, c color.RGBA, until time.Time) (ecs.Entity, error) {
	node := sc.Add(scene.Node{
		Kind:     scene.NodeRing,
		Position: pos,
		Yaw:      yaw,
		Size:     mgl64.Vec3{diameter, diameter, 0.1},
		Color:    c,
	})

	e := w.CreateEntity()
	steps := []error{
		ecs.Add(w, e, component.EffectTagComponent, &component.EffectTag{}),
		ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos, Yaw: yaw}),
		ecs.Add(w, e, component.RenderNodeComponent, &component.RenderNode{Node: node}),
		ecs.Add(w, e, component.TTLComponent, &component.TTL{Until: until}),
	}
	for _, err := range steps {
		if err != nil {
			sc.Remove(node)
			w.DestroyEntity(e)
			return 0, fmt.Errorf("dash effect: %w", err)
		}
	}
	return e, nil
}
