package scenes

import (
	"math/rand"
	"testing"

	"github.com/automoto/archerduel/assets"
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/automoto/archerduel/systems"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func testArena() *leveldata.ArenaData {
	return &leveldata.ArenaData{
		Name:   "flat",
		Width:  24,
		Height: 14,
		Ground: []leveldata.Rect{{X: 0, Y: 0, W: 24, H: 1}},
		Spawns: map[string]leveldata.Point{
			leveldata.SpawnPlayer: {X: 4, Y: 1},
			leveldata.SpawnEnemy:  {X: 18, Y: 1},
		},
	}
}

func TestNewDuelWorldRequiresSpawns(t *testing.T) {
	arena := testArena()
	delete(arena.Spawns, leveldata.SpawnEnemy)

	if _, err := NewDuelWorld(arena, cfg.DefaultSkillDatabase(), rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected an error for a missing enemy spawn")
	}
}

func TestNewDuelWorldOnDefaultArena(t *testing.T) {
	arena, err := leveldata.LoadArena(assets.ArenaFS(), cfg.Arena.DefaultMap, cfg.Arena.PixelsPerUnit)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	w, err := NewDuelWorld(arena, cfg.DefaultSkillDatabase(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewDuelWorld: %v", err)
	}
	if n := donburi.NewQuery(filter.Contains(tags.Player)).Count(w.World); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
	if n := donburi.NewQuery(filter.Contains(tags.Enemy)).Count(w.World); n != 1 {
		t.Errorf("enemies = %d, want 1", n)
	}
	if _, ok := components.Round.First(w.World); !ok {
		t.Error("no round")
	}
}

func TestDuelPlaysToOutcome(t *testing.T) {
	w, err := NewDuelWorld(testArena(), cfg.DefaultSkillDatabase(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewDuelWorld: %v", err)
	}
	record := &systems.DuelRecord{}
	systems.RecordOutcomes(w, record)

	limit := int((cfg.Round.Duration + 10) / cfg.C.TickDelta)
	for i := 0; i < limit && systems.RoundOutcome(w) == cfg.OutcomeNone; i++ {
		w.Update()
	}

	outcome := systems.RoundOutcome(w)
	switch outcome {
	case cfg.OutcomeWin, cfg.OutcomeLose, cfg.OutcomeDraw:
	default:
		t.Fatalf("round did not resolve, outcome = %q", outcome)
	}
	if total := record.Wins + record.Losses + record.Draws; total != 1 {
		t.Errorf("record = %+v, want exactly one result", *record)
	}

	re, _ := components.Round.First(w.World)
	round := components.Round.Get(re)
	player := w.World.Entry(round.Player)
	enemy := w.World.Entry(round.Enemy)
	if !components.Actor.Get(player).Stopped || !components.Actor.Get(enemy).Stopped {
		t.Error("duellists still running after the outcome")
	}

	ctx, _ := components.Combat.First(w.World)
	if components.Combat.Get(ctx).ArrowsFired == 0 {
		t.Error("no arrows fired during the duel")
	}
}
