package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/core"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/automoto/doomerang-abilities/physics/chipmunk"
	"github.com/automoto/doomerang-abilities/physics/kinematic"
)

const appName = "doomerang_abilities"

func main() {
	engine := flag.String("physics", "kinematic", "Physics adapter (kinematic or chipmunk)")
	configPath := flag.String("config", "", "Tuning YAML file (empty = defaults)")
	ticks := flag.Int("ticks", 180, "Ticks to simulate in headless mode")
	realtime := flag.Bool("realtime", false, "Run at the configured tick rate until interrupted")
	profile := flag.String("profile", "", "Saved tuning profile to apply")
	saveProfile := flag.String("save-profile", "", "Save the resulting tuning under this profile name")
	flag.Parse()

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if *profile != "" || *saveProfile != "" {
		tuning, err = applyProfiles(tuning, *profile, *saveProfile)
		if err != nil {
			log.Fatalf("Failed to apply profile: %v", err)
		}
	}

	adapter, err := newAdapter(*engine, tuning)
	if err != nil {
		log.Fatalf("Failed to create physics adapter: %v", err)
	}

	sim, err := core.NewSimulation(tuning, adapter)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	sim.OnGrappleAttached(func(evt messages.GrappleAttachedEvent) {
		if evt.HitEnemy {
			log.Printf("Grapple attached: hook=%v shooter=%v enemy=%v", evt.Hook, evt.Shooter, evt.Enemy)
			return
		}
		log.Printf("Grapple attached: hook=%v shooter=%v anchored to world", evt.Hook, evt.Shooter)
	})
	sim.OnProjectileHit(func(hit messages.ProjectileHitEvent) {
		log.Printf("Projectile hit: projectile=%v target=%v damage=%.1f knockback=(%.0f, %.0f)",
			hit.Projectile, hit.Target, hit.Damage, hit.Knockback.X, hit.Knockback.Y)
	})

	sc, err := newScenario(sim)
	if err != nil {
		log.Fatalf("Failed to build scenario: %v", err)
	}

	log.Printf("Starting sandbox (physics: %s, tick rate: %d/s)", *engine, tuning.Physics.TickRate)

	if !*realtime {
		for i := 0; i < *ticks; i++ {
			sc.step(sim)
			sim.Update()
		}
		sc.report(sim)
		return
	}

	loop, err := core.NewLoop(sim, tuning.Physics.TickRate)
	if err != nil {
		log.Fatalf("Failed to create simulation loop: %v", err)
	}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down sandbox...")
		loop.Stop()
	}()

	// The scenario script is driven from its own ticker through Do so it
	// never races the loop.
	go sc.drive(loop)
	loop.Run()
	loop.Do(sc.report)
}

func newAdapter(engine string, tuning config.Tuning) (physics.Adapter, error) {
	gravity := gamemath.Vec(0, tuning.Physics.Gravity)
	switch engine {
	case "kinematic":
		return kinematic.New(kinematic.Options{
			Width:      int(tuning.Physics.WorldWidth),
			Height:     int(tuning.Physics.WorldHeight),
			CellSize:   tuning.Physics.CellSize,
			Gravity:    gravity,
			SleepAfter: tuning.Physics.SleepFrames,
		}), nil
	case "chipmunk":
		return chipmunk.New(chipmunk.Options{
			Gravity:   gravity,
			SleepTime: float64(tuning.Physics.SleepFrames) * tuning.Delta(),
		}), nil
	}
	return nil, fmt.Errorf("unknown physics adapter %q", engine)
}

func applyProfiles(tuning config.Tuning, load, save string) (config.Tuning, error) {
	store, err := config.OpenProfiles(appName)
	if err != nil {
		return tuning, err
	}
	if load != "" {
		if tuning, err = store.Load(load, tuning); err != nil {
			return tuning, err
		}
		if err := tuning.Validate(); err != nil {
			return tuning, err
		}
		log.Printf("Applied tuning profile %q", load)
	}
	if save != "" {
		if err := store.Save(save, tuning); err != nil {
			return tuning, err
		}
		log.Printf("Saved tuning profile %q", save)
	}
	return tuning, nil
}
