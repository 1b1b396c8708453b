package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Wall        = donburi.NewTag().SetName("Wall")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Projectile  = donburi.NewTag().SetName("Projectile")
	Collectible = donburi.NewTag().SetName("Collectible")
	Portal      = donburi.NewTag().SetName("Portal")
	Boss        = donburi.NewTag().SetName("Boss")
	Hazard      = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for the collision space
const (
	ResolvSolid       = "solid"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvProjectile  = "Projectile"
	ResolvCollectible = "collectible"
	ResolvPortal      = "portal"
	ResolvBoss        = "Boss"
	ResolvHazard      = "hazard"
)
