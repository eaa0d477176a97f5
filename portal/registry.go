package portal

import "fmt"

// Registry holds the configuration list and the portals of the current one.
type Registry struct {
	configs []Configuration
	current int
	portals []Portal
	byID    map[ID]int
	nextID  ID
}

// NewRegistry validates configs and loads configuration 0.
func NewRegistry(configs []Configuration) (*Registry, error) {
	if err := validateAll(configs); err != nil {
		return nil, err
	}
	r := &Registry{}
	r.configs = append([]Configuration(nil), configs...)
	r.Load(0)
	return r, nil
}

func validateAll(configs []Configuration) error {
	if len(configs) == 0 {
		return ErrNoConfigurations
	}
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("portal: configuration %d (%s): %w", i, c.Name, err)
		}
	}
	return nil
}

// Load discards every portal of the previous configuration and builds the
// pairs of configuration index (wrapped modulo the configuration count).
func (r *Registry) Load(index int) {
	n := len(r.configs)
	index = ((index % n) + n) % n
	cfg := r.configs[index]

	portals := make([]Portal, 0, len(cfg.Endpoints))
	byID := make(map[ID]int, len(cfg.Endpoints))
	radius := cfg.radius()
	for i := 0; i+1 < len(cfg.Endpoints); i += 2 {
		a, b := cfg.Endpoints[i], cfg.Endpoints[i+1]
		idA, idB := r.nextID+1, r.nextID+2
		r.nextID += 2

		portals = append(portals,
			Portal{
				ID: idA, Pair: idB, Config: index,
				Position: *a.Position, Facing: a.Rotation, Radius: radius, Color: cfg.Colors[0],
				Destination: *b.Position, DestinationRotation: b.Rotation,
				Active: true,
			},
			Portal{
				ID: idB, Pair: idA, Config: index,
				Position: *b.Position, Facing: b.Rotation, Radius: radius, Color: cfg.Colors[1],
				Destination: *a.Position, DestinationRotation: a.Rotation,
				Active: true,
			},
		)
		byID[idA] = len(portals) - 2
		byID[idB] = len(portals) - 1
	}

	r.current = index
	r.portals = portals
	r.byID = byID
}

// Next advances to the following configuration and returns its index.
func (r *Registry) Next() int {
	r.Load(r.current + 1)
	return r.current
}

// Replace swaps the configuration list and reloads the current index
// against it. On error the registry is left untouched.
func (r *Registry) Replace(configs []Configuration) error {
	if err := validateAll(configs); err != nil {
		return err
	}
	r.configs = append([]Configuration(nil), configs...)
	r.Load(r.current)
	return nil
}

// Current returns the active configuration index.
func (r *Registry) Current() int {
	return r.current
}

// Configuration returns the active configuration.
func (r *Registry) Configuration() Configuration {
	return r.configs[r.current]
}

// Len returns the number of known configurations.
func (r *Registry) Len() int {
	return len(r.configs)
}

// Portals returns the live portals in configuration order. Callers may
// mutate Active and LockoutUntil through the returned slice.
func (r *Registry) Portals() []Portal {
	return r.portals
}

// Portal resolves id against the current configuration.
func (r *Registry) Portal(id ID) (*Portal, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.portals[idx], true
}
