package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/portalarena/logging"
	"github.com/milk9111/portalarena/prefabs"
	"github.com/milk9111/portalarena/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	prefabDir := flag.String("prefabs", "prefabs", "directory whose yaml files override the embedded prefabs")
	seed := flag.Uint64("seed", 0, "random seed for spawned objects (0 = time based)")
	watch := flag.Bool("watch", true, "hot reload prefab yaml from the prefabs directory")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	prefabs.Dir = *prefabDir

	sess, err := newSession(logger, *seed)
	if err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("portal arena")

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	var changes <-chan prefabs.Change
	if *watch {
		watcher, err := prefabs.NewWatcher(*prefabDir)
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.String("dir", *prefabDir), zap.Error(err))
		} else {
			changes = watcher.Events
			g.Go(func() error { return watcher.Run(ctx) })
			g.Go(func() error {
				for err := range watcher.Errors {
					logger.Warn("prefab watcher", zap.Error(err))
				}
				return nil
			})
		}
	}

	game := NewGame(sess, logger, changes, *debug)
	runErr := ebiten.RunGame(game)

	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("prefab watcher stopped", zap.Error(err))
	}
	if runErr != nil {
		logger.Fatal("game exited", zap.Error(runErr))
	}
}

func newSession(logger *zap.Logger, seed uint64) (*session.Session, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("loading prefabs", zap.String("dir", prefabs.Dir), zap.Uint64("seed", seed))

	return prefabs.NewSession(
		session.WithLogger(logger),
		session.WithRand(rand.New(rand.NewPCG(seed, seed>>1))),
	)
}
