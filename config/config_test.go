package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 4000.0, d.Dash.Speed)
	assert.Equal(t, 0.15, d.Dash.Duration)
	assert.InDelta(t, 1.0/60, d.Delta(), 1e-12)
}

func TestWeaponFallsBackToProjectileDefaults(t *testing.T) {
	d := Default()

	w, ok := d.Weapon(PlayerBlaster)
	assert.True(t, ok)
	assert.Equal(t, 20.0, w.Damage)
	assert.Equal(t, d.Projectile.Speed, w.Speed)
	assert.Equal(t, d.Projectile.Knockback, w.Knockback)

	w, ok = d.Weapon("nope")
	assert.False(t, ok)
	assert.Equal(t, d.Projectile.Damage, w.Damage)
}

func TestWeaponKeepsExplicitZero(t *testing.T) {
	out, err := Parse([]byte(`
weapons:
  stun:
    damage: 0
    knockback: 0
`), Default())
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	w, ok := out.Weapon("stun")
	require.True(t, ok)
	assert.Zero(t, w.Damage)
	assert.Zero(t, w.Knockback)
	assert.Equal(t, out.Projectile.Speed, w.Speed)
}

func TestCloneSharesNoWeaponStats(t *testing.T) {
	base := Default()
	out := base.Clone()

	*out.Weapons[PlayerBlaster].Damage = 1
	out.Weapons["new"] = WeaponConfig{}

	w, _ := base.Weapon(PlayerBlaster)
	assert.Equal(t, 20.0, w.Damage)
	assert.NotContains(t, base.Weapons, "new")
}

func TestValidateRejectsBadValues(t *testing.T) {
	d := Default()
	d.Physics.TickRate = 0
	assert.ErrorIs(t, d.Validate(), ErrInvalidTickRate)

	d = Default()
	d.Dash.Duration = 0
	assert.ErrorIs(t, d.Validate(), ErrInvalidTuning)

	d = Default()
	d.Grapple.Damping = -1
	assert.ErrorIs(t, d.Validate(), ErrInvalidTuning)

	d = Default()
	d.Weapons["broken"] = WeaponConfig{Damage: Stat(-5)}
	assert.ErrorIs(t, d.Validate(), ErrInvalidTuning)
}

func TestParseOverlaysOnlyGivenKeys(t *testing.T) {
	base := Default()
	out, err := Parse([]byte(`
dash:
  speed: 5000
weapons:
  shotgun:
    damage: 45
`), base)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, out.Dash.Speed)
	assert.Equal(t, base.Dash.Duration, out.Dash.Duration)
	require.NotNil(t, out.Weapons["shotgun"].Damage)
	assert.Equal(t, 45.0, *out.Weapons["shotgun"].Damage)
	assert.Nil(t, out.Weapons["shotgun"].Speed)
	assert.Contains(t, out.Weapons, PlayerBlaster)

	// base is untouched
	assert.Equal(t, 4000.0, base.Dash.Speed)
	assert.NotContains(t, base.Weapons, "shotgun")
}

func TestParseInvalidYAML(t *testing.T) {
	base := Default()
	_, err := Parse([]byte("dash: [1, 2"), base)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grapple:\n  spring_force: 123\n"), 0o644))

	out, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 123.0, out.Grapple.SpringForce)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DOOMERANG_DASH_SPEED", "4500")
	t.Setenv("DOOMERANG_PHYSICS_TICK_RATE", "120")

	out, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 4500.0, out.Dash.Speed)
	assert.Equal(t, 120, out.Physics.TickRate)
	assert.Equal(t, 0.15, out.Dash.Duration)
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("DOOMERANG_DASH_DURATION", "fast")

	_, err := ApplyEnv(Default())
	assert.ErrorContains(t, err, "parse env:")
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  tick_rate: -1\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidTickRate)
}
