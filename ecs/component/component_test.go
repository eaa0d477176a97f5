package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlesAreDistinct(t *testing.T) {
	ids := map[ComponentID]string{}
	for _, h := range []interface {
		ID() ComponentID
		String() string
	}{
		TransformComponent,
		PhysicsBodyComponent,
		RenderNodeComponent,
		InputComponent,
		DashComponent,
		PlayerComponent,
		JumperComponent,
		PlayerTagComponent,
		SpawnedTagComponent,
		EffectTagComponent,
		TTLComponent,
	} {
		assert.True(t, h.ID().Valid(), h.String())
		prev, dup := ids[h.ID()]
		assert.False(t, dup, "%s shares an id with %s", h, prev)
		ids[h.ID()] = h.String()
	}
}

func TestHandleNamesType(t *testing.T) {
	assert.Equal(t, "component.TTL", TTLComponent.String())
	assert.False(t, ComponentID(0).Valid())
}
