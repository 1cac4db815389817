package components

import "github.com/yohamta/donburi"

// AttachmentData parents an entity to another so it follows it. A parent
// that carries Health also receives damage dealt to the child.
type AttachmentData struct {
	Parent           donburi.Entity
	OffsetX, OffsetY float64
}

var Attachment = donburi.NewComponentType[AttachmentData]()
