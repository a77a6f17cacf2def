// Package terrain generates a classified, weighted hex map from resolved parameters.
// Generation runs a fixed sequence of stages over a fresh grid: landmass, hills,
// mountains, mountain peaks, coastlines, forests, swamps, weights, and rivers.
package terrain

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/hex-kingdom/internal/params"
	"github.com/talgya/hex-kingdom/internal/route"
	"github.com/talgya/hex-kingdom/internal/world"
)

// Stage identifies one step of the generation pipeline.
type Stage uint8

const (
	StageLandmass Stage = iota
	StageHills
	StageMountains
	StagePeaks
	StageCoastlines
	StageForests
	StageSwamps
	StageWeights
	StageRivers
)

// Stages lists the pipeline in the order it runs.
func Stages() []Stage {
	return []Stage{
		StageLandmass, StageHills, StageMountains, StagePeaks, StageCoastlines,
		StageForests, StageSwamps, StageWeights, StageRivers,
	}
}

func (s Stage) String() string {
	switch s {
	case StageLandmass:
		return "landmass"
	case StageHills:
		return "hills"
	case StageMountains:
		return "mountains"
	case StagePeaks:
		return "mountain_peaks"
	case StageCoastlines:
		return "coastlines"
	case StageForests:
		return "forests"
	case StageSwamps:
		return "swamps"
	case StageWeights:
		return "weights"
	case StageRivers:
		return "rivers"
	default:
		return "unknown"
	}
}

// Event reports a finished stage to the caller.
type Event struct {
	RunID   uuid.UUID
	Stage   Stage
	Index   int // 1-based position in the pipeline
	Total   int
	Skipped bool // stage disabled by the parameters
}

// River is one carved river.
type River struct {
	Source  world.Coord
	Route   route.Route
	Painted int // leading tiles of Route that were marked as river
}

// Result is a finished map.
type Result struct {
	ID     uuid.UUID
	Seed   int64 // 0 when WithRand supplied the source without WithSeed
	Params params.Params
	Grid   *world.Grid
	Rivers []River
	Failed int // river sources that could not reach the sea
}

// Generator runs the generation pipeline. A Generator draws from one random source
// and must not be used from several goroutines at once.
type Generator struct {
	params   params.Params
	seed     int64
	rng      *rand.Rand
	jitter   JitterMode
	strict   bool
	progress func(Event)
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the random source. A zero seed picks one at random.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithRand supplies the random source directly. Unless WithSeed is also given, the
// generator does not know how r was seeded and Seed reports 0.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithJitter selects how the weight modifier is drawn.
func WithJitter(m JitterMode) Option {
	return func(g *Generator) { g.jitter = m }
}

// WithStrictBorder rejects prefab stamps centred inside the border margin.
func WithStrictBorder() Option {
	return func(g *Generator) { g.strict = true }
}

// WithProgress registers a callback invoked after every stage.
func WithProgress(fn func(Event)) Option {
	return func(g *Generator) { g.progress = fn }
}

// WithLogger sets the logger for stage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a generator for the given parameters.
func New(p params.Params, opts ...Option) *Generator {
	g := &Generator{params: p, jitter: JitterUniform}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		if g.seed == 0 {
			g.seed = rand.Int63()
		}
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Seed returns the seed the random source was created from, or 0 when the source came
// from WithRand without WithSeed.
func (g *Generator) Seed() int64 { return g.seed }

// run carries the state of one Run call.
type run struct {
	id     uuid.UUID
	params params.Params
	grid   *world.Grid
	rng    *rand.Rand
	seed   int64
	jitter JitterMode
	log    *slog.Logger
	result *Result
}

// Run builds a new grid and runs every stage in order.
func (g *Generator) Run() (*Result, error) {
	p := g.params
	var gridOpts []world.Option
	if g.strict {
		gridOpts = append(gridOpts, world.WithStrictBorder())
	}
	grid, err := world.New(p.Width, p.Height, p.Border, gridOpts...)
	if err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}

	id := uuid.New()
	r := &run{
		id:     id,
		params: p,
		grid:   grid,
		rng:    g.rng,
		seed:   g.seed,
		jitter: g.jitter,
		log:    g.logger.With("run", id.String()),
		result: &Result{ID: id, Seed: g.seed, Params: p, Grid: grid},
	}

	stages := []struct {
		stage   Stage
		enabled bool
		fn      func() error
	}{
		{StageLandmass, true, r.landmass},
		{StageHills, !p.TopographyFlat, r.hills},
		{StageMountains, !p.TopographyFlat, r.mountains},
		{StagePeaks, !p.TopographyFlat, r.peaks},
		{StageCoastlines, true, r.coastlines},
		{StageForests, !p.Barren(), r.forests},
		{StageSwamps, !p.Barren(), r.swamps},
		{StageWeights, true, r.weights},
		{StageRivers, p.RiverModifier > 0, r.rivers},
	}

	for i, s := range stages {
		if s.enabled {
			if err := s.fn(); err != nil {
				return nil, fmt.Errorf("stage %s: %w", s.stage, err)
			}
		}
		r.log.Debug("stage complete", "stage", s.stage.String(), "skipped", !s.enabled, "land", len(grid.Land()))
		if g.progress != nil {
			g.progress(Event{
				RunID:   id,
				Stage:   s.stage,
				Index:   i + 1,
				Total:   len(stages),
				Skipped: !s.enabled,
			})
		}
	}

	return r.result, nil
}
