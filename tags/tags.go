package tags

import "github.com/yohamta/donburi"

var (
	Effect = donburi.NewTag().SetName("Effect")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision queries.
const (
	ResolvSolid = "solid"
)
