package systems

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug flips the collider overlay.
func UpdateDebug(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(components.Input.Get(entry), cfg.ActionToggleDebug).JustPressed {
		cfg.UI.ShowColliders = !cfg.UI.ShowColliders
	}
}

// DrawDebug outlines every object in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.UI.ShowColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := float32(obj.X)
		y := screenY(screen, obj.Y+obj.H)

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvGround) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvArrow) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
	}

	ebitenutil.DebugPrintAt(screen, arrowCountsLine(ActiveArrowCounts(ecs)), 4, screen.Bounds().Dy()-16)
}

// ActiveArrowCounts returns how many arrows of each prototype are out of
// the pool, flying or stuck.
func ActiveArrowCounts(ecs *ecs.ECS) map[cfg.PrototypeID]int {
	counts := map[cfg.PrototypeID]int{}
	ctx := combatContext(ecs)
	if ctx == nil {
		return counts
	}
	ctx.Arrows.EachActive(func(proto cfg.PrototypeID, _ donburi.Entity) {
		counts[proto]++
	})
	return counts
}

func arrowCountsLine(counts map[cfg.PrototypeID]int) string {
	protos := make([]string, 0, len(counts))
	for proto := range counts {
		protos = append(protos, string(proto))
	}
	sort.Strings(protos)

	var b strings.Builder
	b.WriteString("arrows")
	for _, proto := range protos {
		fmt.Fprintf(&b, " %s:%d", proto, counts[cfg.PrototypeID(proto)])
	}
	return b.String()
}
