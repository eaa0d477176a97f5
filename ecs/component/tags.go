package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SpawnedTag marks pool-managed objects that can use portals.
type SpawnedTag struct{}

var SpawnedTagComponent = NewComponent[SpawnedTag]()

type EffectTag struct{}

var EffectTagComponent = NewComponent[EffectTag]()
