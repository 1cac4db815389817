package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/archerduel/assets"
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/automoto/archerduel/systems"
	"github.com/automoto/archerduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewDuelWorld builds a ready-to-run duel: collision space, arena, combat
// context, both duellists and the round. The front systems run each tick
// ahead of the combat pipeline; renderers are left to the caller.
func NewDuelWorld(arena *leveldata.ArenaData, db *cfg.SkillDatabase, rng *rand.Rand, front ...ecs.System) (*ecs.ECS, error) {
	playerSpawn, ok := arena.Spawns[leveldata.SpawnPlayer]
	if !ok {
		return nil, fmt.Errorf("arena %s has no player spawn", arena.Name)
	}
	enemySpawn, ok := arena.Spawns[leveldata.SpawnEnemy]
	if !ok {
		return nil, fmt.Errorf("arena %s has no enemy spawn", arena.Name)
	}

	w := ecs.NewECS(donburi.NewWorld())

	ppu := cfg.Arena.PixelsPerUnit
	cell := int(float64(cfg.Arena.CellSize) * ppu)
	factory.CreateSpace(w, int(arena.Width*ppu), int(arena.Height*ppu), cell, cell)
	factory.CreateArena(w, arena)
	factory.CreateCombatContext(w, db, rng)

	player := factory.CreatePlayer(w, playerSpawn.X, playerSpawn.Y)
	enemy := factory.CreateEnemy(w, enemySpawn.X, enemySpawn.Y)
	factory.CreateRound(w, player, enemy, cfg.Round.Duration)
	systems.StartRound(w)

	for _, s := range front {
		w.AddSystem(s)
	}
	systems.AddPipeline(w)
	return w, nil
}

// DuelScene is the playable front-end around a duel world.
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	record       *systems.DuelRecord
	once         sync.Once
	err          error
}

// NewDuelScene creates a duel on the default arena.
func NewDuelScene(sc SceneChanger, record *systems.DuelRecord) *DuelScene {
	return &DuelScene{sceneChanger: sc, record: record}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	if ds.ecs == nil {
		return
	}
	ds.ecs.Update()

	if systems.RoundOutcome(ds.ecs) != cfg.OutcomeNone && ds.restartPressed() {
		ds.sceneChanger.ChangeScene(NewDuelScene(ds.sceneChanger, ds.record))
	}
}

func (ds *DuelScene) restartPressed() bool {
	entry, ok := components.Input.First(ds.ecs.World)
	if !ok {
		return false
	}
	input := components.Input.Get(entry)
	return systems.GetAction(input, cfg.ActionRestart).JustPressed ||
		systems.GetAction(input, cfg.ActionStart).JustPressed
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		if ds.err != nil {
			drawError(screen, ds.err)
		}
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	arena, err := leveldata.LoadArena(assets.ArenaFS(), cfg.Arena.DefaultMap, cfg.Arena.PixelsPerUnit)
	if err != nil {
		ds.err = fmt.Errorf("failed to load arena: %w", err)
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	w, err := NewDuelWorld(arena, cfg.DefaultSkillDatabase(), rng,
		systems.UpdateInput,
		systems.ApplyPlayerInput,
		systems.UpdateDebug,
	)
	if err != nil {
		ds.err = err
		return
	}

	systems.RecordOutcomes(w, ds.record)

	w.AddRenderer(cfg.Default, systems.DrawArena)
	w.AddRenderer(cfg.Default, systems.DrawArrows)
	w.AddRenderer(cfg.Default, systems.DrawActors)
	w.AddRenderer(cfg.Default, systems.DrawEffects)
	w.AddRenderer(cfg.Default, systems.DrawDebug)
	w.AddRenderer(cfg.Default, func(e *ecs.ECS, screen *ebiten.Image) {
		systems.DrawHUD(e, screen, ds.record)
	})
	ds.ecs = w
}

func drawError(screen *ebiten.Image, err error) {
	ebitenutil.DebugPrint(screen, err.Error())
}
