package prefabs

import (
	"fmt"

	"github.com/milk9111/portalarena/session"
)

// Apply feeds a changed prefab file into a running session. Unknown files
// are ignored.
func Apply(s *session.Session, change Change) error {
	switch change.Name {
	case PortalsFile:
		spec, err := DecodeSpec[PortalsSpec](change.Name, change.Data)
		if err != nil {
			return err
		}
		configs, err := spec.Build()
		if err != nil {
			return err
		}
		return s.ReplacePortalConfigurations(configs)
	case ArenaFile:
		spec, err := DecodeSpec[ArenaSpec](change.Name, change.Data)
		if err != nil {
			return err
		}
		cfg, err := spec.Config()
		if err != nil {
			return fmt.Errorf("prefabs: apply %s: %w", change.Name, err)
		}
		s.ApplyTuning(cfg)
		return nil
	default:
		return nil
	}
}
