package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	slotMargin   = 4
)

// DrawHUD renders both health bars, the player's skill slots, the round
// timer and the countdown or outcome banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image, record *DuelRecord) {
	re, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	width := screen.Bounds().Dx()
	small := fonts.HUD.Get()

	if player := entryOf(ecs, round.Player); player != nil {
		drawHUDBar(screen, hudMargin, components.Health.Get(player).Ratio(), cfg.UI.PlayerColor)
		drawSlots(screen, small, player)
	}
	if enemy := entryOf(ecs, round.Enemy); enemy != nil {
		drawHUDBar(screen, float32(width-hudMargin-hudBarWidth), components.Health.Get(enemy).Ratio(), cfg.UI.EnemyColor)
	}

	timer := fmt.Sprintf("%3.0f", round.Timer)
	drawCentered(screen, small, timer, width/2, hudMargin+hudBarHeight, cfg.White)

	if record != nil {
		line := fmt.Sprintf("W %d  L %d  D %d", record.Wins, record.Losses, record.Draws)
		text.Draw(screen, line, small, width-hudMargin-hudBarWidth, hudMargin*2+hudBarHeight+12, cfg.White) //nolint:staticcheck
	}

	if round.Label != "" {
		drawCentered(screen, fonts.Banner.Get(), round.Label, width/2, screen.Bounds().Dy()/3, cfg.Yellow)
	}
}

func drawHUDBar(screen *ebiten.Image, x float32, ratio float64, clr color.Color) {
	vector.FillRect(screen, x, hudMargin, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, x, hudMargin, hudBarWidth*float32(ratio), hudBarHeight, clr, false)
}

// drawSlots shows the player's loadout with a shrinking cooldown overlay.
func drawSlots(screen *ebiten.Image, face font.Face, player *donburi.Entry) {
	actor := components.Actor.Get(player)
	w, h := cfg.UI.SlotBarWidth, cfg.UI.SlotBarHeight
	y := float32(hudMargin*2 + hudBarHeight)

	for slot := range actor.Loadout {
		x := float32(hudMargin) + float32(slot)*(w+slotMargin)
		clr := cfg.Gray
		if slot == actor.ActingSlot {
			clr = cfg.Orange
		}
		vector.FillRect(screen, x, y, w, h, clr, false)
		if ratio := CooldownRatio(player, slot); ratio > 0 {
			vector.FillRect(screen, x, y, w, h*float32(ratio), color.RGBA{0, 0, 0, 160}, false)
		}
		label := fmt.Sprintf("%d", slot+1)
		text.Draw(screen, label, face, int(x)+2, int(y+h)-2, cfg.White) //nolint:staticcheck
	}
}

func drawCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)                  //nolint:staticcheck
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr) //nolint:staticcheck
}
