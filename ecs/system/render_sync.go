package system

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/scene"
)

// RenderSyncSystem copies transforms into scene nodes and points the camera
// rig at the player.
type RenderSyncSystem struct {
	scene scene.Scene
}

func NewRenderSyncSystem(sc scene.Scene) *RenderSyncSystem {
	return &RenderSyncSystem{scene: sc}
}

func (s *RenderSyncSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.scene == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent, component.RenderNodeComponent, func(_ ecs.Entity, tf *component.Transform, rn *component.RenderNode) {
		s.scene.SetPose(rn.Node, tf.Position, tf.Yaw)
	})

	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	if tf, ok := ecs.Get(w, player, component.TransformComponent); ok {
		s.scene.SetCamera(scene.Camera{Position: tf.Position, Yaw: tf.Yaw, Pitch: tf.Pitch})
	}
}
