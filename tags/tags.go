package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Ground   = donburi.NewTag().SetName("Ground")
	Platform = donburi.NewTag().SetName("Platform")
	Arrow    = donburi.NewTag().SetName("Arrow")
	Effect   = donburi.NewTag().SetName("Effect")
	Popup    = donburi.NewTag().SetName("Popup")
)

// Resolv tags for physics collision
const (
	ResolvGround = "ground"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvArrow  = "Arrow"
)
