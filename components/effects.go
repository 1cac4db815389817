package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a pooled visual effect that returns itself after Remaining.
type EffectData struct {
	Name      string
	Active    bool
	Remaining float64
	Duration  float64
}

var Effect = donburi.NewComponentType[EffectData]()

// PopupData is a pooled floating damage number.
type PopupData struct {
	Active bool
	Amount int
	BaseY  float64
	Rise   *gween.Tween
	Alpha  float64
}

var Popup = donburi.NewComponentType[PopupData]()
