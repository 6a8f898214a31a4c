package core

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-abilities/config"
)

// Loop drives a Simulation at a fixed tick rate on its own goroutine. Other
// goroutines reach the simulation through Do.
type Loop struct {
	mu       sync.Mutex
	sim      *Simulation
	tickRate int
	stopOnce sync.Once
	stopChan chan struct{}
}

func NewLoop(sim *Simulation, tickRate int) (*Loop, error) {
	if tickRate <= 0 {
		return nil, config.ErrInvalidTickRate
	}
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}, nil
}

// Run ticks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Do runs fn with exclusive access to the simulation, between ticks.
func (l *Loop) Do(fn func(*Simulation)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.sim)
}

func (l *Loop) tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sim.Update()
}
