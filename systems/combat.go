package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ResolveDamageable returns the entity that receives damage for a collided
// entity: the entity itself if it has Health, otherwise its attachment
// parent if that has Health. Nil when neither does.
func ResolveDamageable(e *donburi.Entry) *donburi.Entry {
	if e == nil || !e.Valid() {
		return nil
	}
	if e.HasComponent(components.Health) {
		return e
	}
	if !e.HasComponent(components.Attachment) {
		return nil
	}
	link := components.Attachment.Get(e)
	if link.Parent == donburi.Null || !e.World.Valid(link.Parent) {
		return nil
	}
	parent := e.World.Entry(link.Parent)
	if parent.HasComponent(components.Health) {
		return parent
	}
	return nil
}

// ApplyDamage deals amount to a receiver's Health. The popup anchor sits
// above the receiver's feet.
func ApplyDamage(receiver *donburi.Entry, amount int, direction dmath.Vec2) {
	if receiver == nil || !receiver.HasComponent(components.Health) {
		return
	}
	anchor := dmath.Vec2{}
	if receiver.HasComponent(components.Object) {
		anchor = components.Object.Get(receiver).Feet()
	}
	anchor.Y += cfg.Health.PopupOffsetY
	components.Health.Get(receiver).TakeDamage(amount, anchor, direction)
}
