package components

import "github.com/yohamta/donburi"

// EnemyData is a patrolling enemy. Dead enemies keep their entity until the
// level reloads so iteration order stays stable.
type EnemyData struct {
	PatrolLo  float64
	PatrolHi  float64
	Direction float64
	Alive     bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

type ProjectileData struct {
	Direction float64
	Distance  float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

type CollectibleData struct {
	Collected bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
