package prefabs

import (
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/session"
)

// LoadSessionConfig reads the arena and portal prefabs, disk copies first.
func LoadSessionConfig() (session.Config, []portal.Configuration, error) {
	arena, err := LoadArenaSpec()
	if err != nil {
		return session.Config{}, nil, err
	}
	cfg, err := arena.Config()
	if err != nil {
		return session.Config{}, nil, err
	}

	portals, err := LoadPortalsSpec()
	if err != nil {
		return session.Config{}, nil, err
	}
	configs, err := portals.Build()
	if err != nil {
		return session.Config{}, nil, err
	}
	return cfg, configs, nil
}

// NewSession starts a session from the prefabs.
func NewSession(opts ...session.Option) (*session.Session, error) {
	cfg, configs, err := LoadSessionConfig()
	if err != nil {
		return nil, err
	}
	return session.New(cfg, configs, opts...)
}
