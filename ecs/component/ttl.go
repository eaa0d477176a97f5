package component

import "time"

// TTL destroys the entity, and removes its render node, once the frame time
// reaches Until.
type TTL struct {
	Until time.Time
}

var TTLComponent = NewComponent[TTL]()
