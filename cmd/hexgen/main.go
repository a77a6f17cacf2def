// Command hexgen generates hex terrain maps and logs a summary of each.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/talgya/hex-kingdom/internal/config"
	"github.com/talgya/hex-kingdom/internal/params"
	"github.com/talgya/hex-kingdom/internal/terrain"
	"github.com/talgya/hex-kingdom/internal/world"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fs := flag.NewFlagSet("hexgen", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	choices, _ := cfg.Choices()
	p, err := params.Resolve(choices)
	if err != nil {
		return err
	}
	mode, _ := cfg.Jitter()

	seed := cfg.Seed
	if seed == 0 {
		// Leave room for the whole batch so seed+i stays positive.
		seed = rand.Int63n(math.MaxInt64-int64(cfg.Count)) + 1
	}
	slog.Info("hexgen starting",
		"choices", choices.String(),
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"seed", seed,
		"count", cfg.Count,
		"weight_noise", mode.String(),
	)

	results := make([]*terrain.Result, cfg.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range results {
		opts := []terrain.Option{
			terrain.WithSeed(seed + int64(i)),
			terrain.WithJitter(mode),
			terrain.WithProgress(func(e terrain.Event) {
				slog.Debug("stage", "run", e.RunID, "stage", e.Stage.String(),
					"step", fmt.Sprintf("%d/%d", e.Index, e.Total), "skipped", e.Skipped)
			}),
		}
		if cfg.StrictBorder {
			opts = append(opts, terrain.WithStrictBorder())
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := terrain.New(p, opts...).Run()
			if err != nil {
				return fmt.Errorf("map %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		summarize(res)
	}
	return nil
}

// summarize logs the kind, feature and river counts of a finished map.
func summarize(res *terrain.Result) {
	grid := res.Grid
	slog.Info("map generated",
		"run", res.ID,
		"seed", res.Seed,
		"tiles", humanize.Comma(int64(grid.Len())),
		"land", humanize.Comma(int64(len(grid.Land()))),
		"sea", humanize.Comma(int64(len(grid.Sea()))),
		"rivers", len(res.Rivers),
		"failed_rivers", res.Failed,
	)

	kinds := grid.KindCounts()
	for _, k := range world.Kinds() {
		if n := kinds[k]; n > 0 {
			slog.Info("kind", "run", res.ID, "kind", world.KindName(k), "count", humanize.Comma(int64(n)))
		}
	}
	features := grid.FeatureCounts()
	for _, f := range world.Features() {
		if n := features[f]; n > 0 && f != world.FeatureEmpty {
			slog.Info("feature", "run", res.ID, "feature", world.FeatureName(f), "count", humanize.Comma(int64(n)))
		}
	}
}
