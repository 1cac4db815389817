package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances each moving platform's tween and carries the
// actors standing on it.
func UpdatePlatforms(ecs *ecs.ECS) {
	moved := map[*resolv.Object]components.Vector{}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		platform := components.Platform.Get(e)
		obj := components.Object.Get(e)

		progress, _, complete := seq.Update(float32(cfg.C.TickDelta))
		if complete {
			seq.Reset()
		}

		p := float64(progress)
		before := obj.Position()
		x := platform.BaseX + platform.TravelX*p
		y := platform.BaseY + platform.TravelY*p
		obj.SetPosition(x, y)
		obj.Update()

		platform.DeltaX = x - before.X
		platform.DeltaY = y - before.Y
		if platform.DeltaX != 0 || platform.DeltaY != 0 {
			moved[obj.Object] = components.Vector{X: platform.DeltaX, Y: platform.DeltaY}
		}
	})

	if len(moved) == 0 {
		return
	}
	carry := func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround == nil {
			return
		}
		if d, ok := moved[physics.OnGround]; ok {
			obj := components.Object.Get(e)
			obj.Move(d.X, d.Y)
			obj.Update()
		}
	}
	tags.Player.Each(ecs.World, carry)
	tags.Enemy.Each(ecs.World, carry)
}

// UpdateAttachments keeps attached entities (stuck arrows) at their offset
// from the parent.
func UpdateAttachments(ecs *ecs.ECS) {
	components.Attachment.Each(ecs.World, func(e *donburi.Entry) {
		link := components.Attachment.Get(e)
		parent := entryOf(ecs, link.Parent)
		if parent == nil || !parent.HasComponent(components.Object) {
			return
		}
		p := components.Object.Get(parent).Position()
		obj := components.Object.Get(e)
		obj.SetPosition(p.X+link.OffsetX, p.Y+link.OffsetY)
		if obj.Space != nil {
			obj.Update()
		}
	})
}

// Attach parents child to parent at their current relative position.
func Attach(child, parent *donburi.Entry) {
	cp := components.Object.Get(child).Position()
	pp := components.Object.Get(parent).Position()
	link := &components.AttachmentData{
		Parent:  parent.Entity(),
		OffsetX: cp.X - pp.X,
		OffsetY: cp.Y - pp.Y,
	}
	if child.HasComponent(components.Attachment) {
		components.Attachment.Set(child, link)
		return
	}
	donburi.Add(child, components.Attachment, link)
}
