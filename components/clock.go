package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Now is Tick * Delta seconds.
type ClockData struct {
	Tick  int64
	Delta float64
	Now   float64
}

var Clock = donburi.NewComponentType[ClockData]()

// Now returns the current simulation time of w.
func Now(w donburi.World) float64 {
	return Clock.Get(Clock.MustFirst(w)).Now
}
