package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_TEST_STR", "hello")
	t.Setenv("BLOCKFALL_TEST_INT", "12")
	t.Setenv("BLOCKFALL_TEST_BAD_INT", "twelve")
	t.Setenv("BLOCKFALL_TEST_BOOL", "true")
	t.Setenv("BLOCKFALL_TEST_FLOAT", "0.75")
	t.Setenv("BLOCKFALL_TEST_DURATION", "90s")

	assert.Equal(t, "hello", config.GetEnv("BLOCKFALL_TEST_STR", "x"))
	assert.Equal(t, "x", config.GetEnv("BLOCKFALL_TEST_UNSET", "x"))
	assert.Equal(t, 12, config.GetEnvAsInt("BLOCKFALL_TEST_INT", 1))
	assert.Equal(t, 1, config.GetEnvAsInt("BLOCKFALL_TEST_BAD_INT", 1))
	assert.True(t, config.GetEnvAsBool("BLOCKFALL_TEST_BOOL", false))
	assert.False(t, config.GetEnvAsBool("BLOCKFALL_TEST_STR", false))
	assert.InDelta(t, 0.75, config.GetEnvAsFloat("BLOCKFALL_TEST_FLOAT", 0), 1e-9)
	assert.Equal(t, 90*time.Second, config.GetEnvAsDuration("BLOCKFALL_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, config.GetEnvAsDuration("BLOCKFALL_TEST_STR", time.Second))
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.FromEnv()
		assert.Equal(t, 1, cfg.Scale)
		assert.False(t, cfg.Debug)
		assert.True(t, cfg.Sound)
		assert.Equal(t, 10*time.Minute, cfg.Soak.Duration)
		assert.Equal(t, uint64(1), cfg.Soak.Seed)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BLOCKFALL_SCALE", "2")
		t.Setenv("BLOCKFALL_DEBUG", "1")
		t.Setenv("BLOCKFALL_SOAK_SEED", "99")
		cfg := config.FromEnv()
		assert.Equal(t, 2, cfg.Scale)
		assert.True(t, cfg.Debug)
		assert.Equal(t, uint64(99), cfg.Soak.Seed)
	})
}

func TestGetEnvAsUint64(t *testing.T) {
	t.Setenv("BLOCKFALL_TEST_SEED", "18446744073709551615")
	assert.Equal(t, uint64(18446744073709551615), config.GetEnvAsUint64("BLOCKFALL_TEST_SEED", 1))

	t.Setenv("BLOCKFALL_TEST_SEED", "-5")
	assert.Equal(t, uint64(1), config.GetEnvAsUint64("BLOCKFALL_TEST_SEED", 1))

	t.Setenv("BLOCKFALL_TEST_SEED", "")
	assert.Equal(t, uint64(1), config.GetEnvAsUint64("BLOCKFALL_TEST_SEED", 1))
}

func TestNegativeSoakSeedFallsBack(t *testing.T) {
	t.Setenv("BLOCKFALL_SOAK_SEED", "-1")
	assert.Equal(t, uint64(1), config.FromEnv().Soak.Seed)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BLOCKFALL_SCALE=3\n"), 0o644))
	t.Chdir(dir)
	// godotenv never overrides variables that are already set, so make
	// sure this one is unset and restored afterwards.
	t.Setenv("BLOCKFALL_SCALE", "")
	require.NoError(t, os.Unsetenv("BLOCKFALL_SCALE"))

	cfg := config.Load()
	assert.Equal(t, 3, cfg.Scale)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.Load()
	assert.Equal(t, 1, cfg.Scale)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_SCALE", "2")
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	cfg.BindSoakFlags(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "4", "-debug", "-seed", "7", "-input-rate", "3"}))
	cfg.Validate()

	assert.Equal(t, 4, cfg.Scale)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(7), cfg.Soak.Seed)
	assert.InDelta(t, 1.0, cfg.Soak.InputRate, 1e-9)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{Scale: 0, Soak: config.SoakConfig{Step: 0, InputRate: -1}}
	cfg.Validate()
	assert.Equal(t, 1, cfg.Scale)
	assert.Equal(t, 16*time.Millisecond, cfg.Soak.Step)
	assert.Zero(t, cfg.Soak.InputRate)
}
