// Command arenacheck loads the arena prefabs and runs every portal
// configuration headless on a manual clock, reporting how many teleports each
// one produced. It exits non-zero when the prefabs do not load.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/clock"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/system"
	"github.com/milk9111/portalarena/logging"
	"github.com/milk9111/portalarena/prefabs"
	"github.com/milk9111/portalarena/session"
	"go.uber.org/zap"
)

// Report is the outcome of one configuration run.
type Report struct {
	Configuration string
	Ticks         int
	Teleports     int
	Player        int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("arenacheck", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("prefabs", "prefabs", "directory whose yaml files override the embedded prefabs")
	ticks := fs.Int("ticks", 120, "ticks to simulate per configuration")
	spawnN := fs.Int("spawn", 5, "cubes dropped onto the first portal of each configuration")
	seed := fs.Uint64("seed", 1, "random seed for spawned objects")
	jitter := fs.Float64("jitter", 0.25, "horizontal spawn jitter; keep it under the trigger radius")
	debug := fs.Bool("debug", false, "log every event")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(*debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	prefabs.Dir = *dir
	reports, err := check(logger, options{Ticks: *ticks, Spawn: *spawnN, Seed: *seed, Jitter: *jitter})
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintf(out, "%-16s ticks=%d teleports=%d player=%d\n", r.Configuration, r.Ticks, r.Teleports, r.Player)
	}
	return nil
}

type options struct {
	Ticks  int
	Spawn  int
	Seed   uint64
	Jitter float64
}

func check(logger *zap.Logger, opts options) ([]Report, error) {
	cfg, configs, err := prefabs.LoadSessionConfig()
	if err != nil {
		return nil, fmt.Errorf("arenacheck: %w", err)
	}
	cfg.SpawnJitter = opts.Jitter

	var current *Report
	seed := opts.Seed
	clk := clock.NewManual(time.Unix(0, 0))
	s, err := session.New(cfg, configs,
		session.WithLogger(logger),
		session.WithClock(clk),
		session.WithRand(rand.New(rand.NewPCG(seed, seed>>1))),
		session.WithEventHook(func(evt ecs.Event) {
			if current == nil || evt.Type != ecs.EventTeleported {
				return
			}
			current.Teleports++
			if tp, ok := evt.Data.(system.Teleport); ok && tp.Player {
				current.Player++
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("arenacheck: %w", err)
	}

	step := time.Duration(s.Config().Step * float64(time.Second))
	reports := make([]Report, s.Portals().Len())
	for i := range reports {
		if i > 0 {
			s.AdvanceToNextPortalConfiguration()
		}
		current = &reports[i]
		current.Configuration = s.Portals().Configuration().Name
		current.Ticks = opts.Ticks

		// Objects appear one unit above the given point.
		if ps := s.Portals().Portals(); len(ps) > 0 {
			at := ps[0].Position.Sub(mgl64.Vec3{0, 1, 0})
			for range opts.Spawn {
				s.SpawnObjectNear(at)
			}
		}
		for range opts.Ticks {
			clk.Advance(step)
			s.Tick()
		}
	}
	return reports, nil
}
