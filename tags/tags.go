package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Door       = donburi.NewTag().SetName("Door")
	CameraZone = donburi.NewTag().SetName("CameraZone")
	Session    = donburi.NewTag().SetName("Session")
)
