package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Solid      = donburi.NewTag().SetName("Solid")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Hurtbox    = donburi.NewTag().SetName("Hurtbox")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags that are not collision groups
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvSensor = "sensor"
)
