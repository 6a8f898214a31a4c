package components

import (
	"github.com/automoto/doomerang-abilities/config"
	"github.com/yohamta/donburi"
)

type TuningData struct {
	config.Tuning
}

var Tuning = donburi.NewComponentType[TuningData]()

// TuningOf returns the tuning the simulation in w was built with.
func TuningOf(w donburi.World) *config.Tuning {
	return &Tuning.Get(Tuning.MustFirst(w)).Tuning
}
