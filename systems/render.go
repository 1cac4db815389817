package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/fonts"
	"github.com/automoto/archerduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The arena is drawn 1:1 in its pixel space with y flipped so world up is
// screen up.

func screenY(screen *ebiten.Image, pixelY float64) float32 {
	return float32(float64(screen.Bounds().Dy()) - pixelY)
}

func fillBox(screen *ebiten.Image, o *components.ObjectData, clr color.Color) {
	vector.FillRect(screen, float32(o.X), screenY(screen, o.Y+o.H), float32(o.W), float32(o.H), clr, false)
}

// DrawArena renders ground rects and moving platforms.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		fillBox(screen, components.Object.Get(e), cfg.UI.GroundColor)
	})
}

// DrawActors renders both duellists as boxes with a facing tick. Spinning
// actors are drawn as an outline; deactivated actors are hidden.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	draw := func(e *donburi.Entry, clr color.RGBA) {
		if IsDeactivated(e) {
			return
		}
		o := components.Object.Get(e)
		actor := components.Actor.Get(e)
		if e.HasComponent(components.Death) {
			clr = cfg.Gray
		}
		if actor.Jumping && actor.Spin != 0 {
			vector.StrokeRect(screen, float32(o.X), screenY(screen, o.Y+o.H), float32(o.W), float32(o.H), 2, clr, false)
		} else {
			fillBox(screen, o, clr)
		}

		cx := o.X + o.W/2
		eyeY := screenY(screen, o.Y+o.H*0.8)
		vector.StrokeLine(screen, float32(cx), eyeY, float32(cx+actor.FacingX*o.W), eyeY, 2, cfg.White, false)
		drawHPBar(screen, o, components.Health.Get(e))
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) { draw(e, cfg.UI.PlayerColor) })
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) { draw(e, cfg.UI.EnemyColor) })
}

func drawHPBar(screen *ebiten.Image, o *components.ObjectData, hp *components.HealthData) {
	w, h := cfg.UI.HPBarWidth, cfg.UI.HPBarHeight
	x := float32(o.X+o.W/2) - w/2
	y := screenY(screen, o.Y+o.H) - h - 4

	vector.FillRect(screen, x, y, w, h, cfg.Red, false)
	vector.FillRect(screen, x, y, w*float32(hp.Ratio()), h, cfg.Green, false)
}

// DrawArrows renders every live arrow as a line along its rotation.
func DrawArrows(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		arrow := components.Arrow.Get(e)
		if arrow.State == cfg.ArrowIdle {
			return
		}
		o := components.Object.Get(e)
		clr := cfg.UI.ArrowColor
		if arrow.Behavior == cfg.BehaviorClusterCarrier {
			clr = cfg.UI.ClusterColor
		}

		rad := arrow.Rotation * math.Pi / 180
		half := o.W / 2
		cx, cy := o.X+o.W/2, o.Y+o.H/2
		dx, dy := math.Cos(rad)*half, math.Sin(rad)*half
		vector.StrokeLine(screen,
			float32(cx-dx), screenY(screen, cy-dy),
			float32(cx+dx), screenY(screen, cy+dy),
			2, clr, false)
	})
}

// DrawEffects renders active effects as fading rings and damage popups as
// rising numbers.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if !fx.Active || fx.Duration <= 0 {
			return
		}
		o := components.Object.Get(e)
		t := 1 - fx.Remaining/fx.Duration
		r := float32(8 + 24*t)
		clr := cfg.UI.EffectColor
		clr.A = uint8(255 * (1 - t))
		vector.StrokeCircle(screen, float32(o.X+o.W/2), screenY(screen, o.Y+o.H/2), r, 2, clr, false)
	})

	face := fonts.Popup.Get()
	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		if !p.Active {
			return
		}
		o := components.Object.Get(e)
		clr := cfg.Yellow
		clr.A = uint8(255 * math.Max(0, math.Min(1, p.Alpha)))
		text.Draw(screen, fmt.Sprintf("%d", p.Amount), face, int(o.X), int(screenY(screen, o.Y)), clr) //nolint:staticcheck
	})
}
