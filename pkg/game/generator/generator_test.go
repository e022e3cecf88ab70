package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

func seeded(seed string) generator.Config {
	cfg := generator.DefaultConfig()
	cfg.Size = 40
	cfg.UseSeed = true
	cfg.Seed = seed
	return cfg
}

func runStepped(cfg generator.Config, opts ...generator.Option) *generator.State {
	cfg.Mode = generator.ModeStepped
	g := generator.New(cfg, opts...)
	for g.Step() {
	}
	return g.State()
}

func requireSameLayout(t *testing.T, a, b *generator.State) {
	t.Helper()
	require.Equal(t, a.Rooms(), b.Rooms())
	require.Equal(t, a.Doors(), b.Doors())
	require.Equal(t, a.TileGrid(), b.TileGrid())
	require.True(t, a.Graph().Equal(b.Graph()), "graphs differ")
}

func TestGenerate_SmallScenario(t *testing.T) {
	cfg := seeded("42")
	cfg.Size = 20
	cfg.MinWidth = 4
	cfg.MinHeight = 4
	cfg.GraphTree = false
	s := generator.Generate(cfg)

	rooms := s.Rooms()
	require.GreaterOrEqual(t, len(rooms), 2)
	for i, r := range rooms {
		require.True(t, s.Bounds().ContainsRect(r), "room %v outside bounds", r)
		for _, o := range rooms[i+1:] {
			in := r.Intersect(o)
			require.LessOrEqual(t, min(in.Width, in.Height), 1, "rooms %v and %v overlap beyond the band", r, o)
		}
	}
	require.NoError(t, s.Validate())
	require.True(t, s.Graph().IsFullyConnected())
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generator.Generate(seeded("dungeon"))
	b := generator.Generate(seeded("dungeon"))
	requireSameLayout(t, a, b)
	require.Equal(t, rng.SeedFromString("dungeon"), a.Seed())
}

func TestGenerate_SteppedMatchesImmediate(t *testing.T) {
	cfg := seeded("7")
	cfg.DeletePercent = 30
	requireSameLayout(t, runStepped(cfg), generator.Generate(cfg))
}

func TestGenerator_SkipFinishesWithSameResult(t *testing.T) {
	cfg := seeded("11")
	cfg.DeletePercent = 20
	g := generator.New(cfg)
	for range 5 {
		require.True(t, g.Step())
	}
	g.Skip()
	require.False(t, g.Step())
	require.True(t, g.Done())
	require.Equal(t, "done", g.Phase())
	requireSameLayout(t, g.State(), generator.Generate(cfg))
}

func TestGenerate_TreeHasNoCycles(t *testing.T) {
	s := generator.Generate(seeded("tree"))
	g := s.Graph()
	require.True(t, g.IsFullyConnected())
	require.Equal(t, g.NodeCount()-1, g.EdgeCount())
	for _, d := range s.DoorIDs() {
		require.Equal(t, 2, g.Degree(d))
	}
	require.NoError(t, s.Validate())
}

func TestGenerate_PruningKeepsConnectivity(t *testing.T) {
	cfg := seeded("prune")
	cfg.DeletePercent = 50
	cfg.GraphTree = false
	full := cfg
	full.DeletePercent = 0

	s := generator.Generate(cfg)
	removed, target := s.Pruned()
	require.LessOrEqual(t, removed, target)
	require.Equal(t, len(generator.Generate(full).Rooms())*50/100, target)
	require.Len(t, s.Rooms(), len(generator.Generate(full).Rooms())-removed)
	require.True(t, s.Graph().IsFullyConnected())
	require.NoError(t, s.Validate())
}

func TestGenerate_FloorEvents(t *testing.T) {
	var events []generator.FloorEvent
	s := generator.Generate(seeded("floor"), generator.WithOnFloorPlaced(func(e generator.FloorEvent) {
		events = append(events, e)
	}))

	require.Len(t, events, s.FloorCount())
	seen := make(map[world.Cell]bool, len(events))
	for _, e := range events {
		require.False(t, seen[e.Cell], "cell %v emitted twice", e.Cell)
		seen[e.Cell] = true
		require.True(t, e.Bounds.Contains(e.Cell.X, e.Cell.Y))
		require.True(t, s.IsFloor(e.Cell))
	}

	grid := s.TileGrid()
	require.Len(t, grid, s.Bounds().Height)
	require.Len(t, grid[0], s.Bounds().Width)
	for _, d := range s.Doors() {
		require.Equal(t, int(world.Open), grid[d.Y][d.X], "door %v is walled", d)
	}
}

func TestGenerator_HooksFireInOrder(t *testing.T) {
	var order []string
	generator.Generate(seeded("hooks"),
		generator.WithOnGenerated(func(s *generator.State) {
			require.Nil(t, s.TileGrid())
			order = append(order, "generated")
		}),
		generator.WithOnFloorPlaced(func(generator.FloorEvent) {
			if order[len(order)-1] != "floor" {
				order = append(order, "floor")
			}
		}),
		generator.WithOnFloorFilled(func(s *generator.State) {
			require.NotNil(t, s.TileGrid())
			order = append(order, "filled")
		}),
	)
	require.Equal(t, []string{"generated", "floor", "filled"}, order)
}

func TestGenerator_RunHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := generator.New(seeded("cancel"))
	require.ErrorIs(t, g.Run(ctx), context.Canceled)
	require.False(t, g.Done())
}

func TestGenerator_RunWithPacer(t *testing.T) {
	paced := 0
	g := generator.New(seeded("pace"), generator.WithPacer(func(ctx context.Context) error {
		paced++
		return generator.Interval(0)(ctx)
	}))
	require.NoError(t, g.Run(context.Background()))
	require.True(t, g.Done())
	require.Equal(t, g.Steps()-1, paced)
}

func TestGenerator_RandomizeDimensions(t *testing.T) {
	cfg := seeded("random")
	cfg.RandomizeDimensions = true
	g := generator.New(cfg)
	got := g.Config()
	require.GreaterOrEqual(t, got.Size, 50)
	require.Less(t, got.Size, 200)
	require.GreaterOrEqual(t, got.MinWidth, 5)
	require.Less(t, got.MinWidth, 30)
	require.GreaterOrEqual(t, got.IntersectLength, 2)
	require.Equal(t, got.Size, g.State().Bounds().Width)
}

func TestGenerate_UnseededStillValid(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Size = 30
	s := generator.Generate(cfg)
	require.NotEmpty(t, s.Rooms())
	require.NoError(t, s.Validate())
}
