package main

import (
	"image"
	"log"

	"github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/fonts"
	"github.com/automoto/archerduel/scenes"
	"github.com/automoto/archerduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(record *systems.DuelRecord) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDuelScene(g, record)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Archer Duel")
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load the duel record and settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		config.Player.AutoFireWhenIdle = saved.AutoFire
	}
	record, err := systems.LoadRecord()
	if err != nil {
		log.Printf("Warning: Starting a fresh duel record: %v", err)
	}

	if err := ebiten.RunGame(NewGame(record)); err != nil {
		log.Fatal(err)
	}
}
