// Package config loads frontend settings from a .env file and the
// environment. Command-line flags registered by BindFlags override both.
package config

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Scale   int
	Debug   bool
	Sound   bool
	LogFile string

	Soak SoakConfig
}

// SoakConfig drives the headless soak run.
type SoakConfig struct {
	Duration  time.Duration
	Step      time.Duration
	Seed      uint64
	InputRate float64
}

// Load reads .env from the working directory if there is one and builds a
// Config from BLOCKFALL_* variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("No .env file found")
		} else {
			log.Printf("Failed to read .env: %v", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Scale:   GetEnvAsInt("BLOCKFALL_SCALE", 1),
		Debug:   GetEnvAsBool("BLOCKFALL_DEBUG", false),
		Sound:   GetEnvAsBool("BLOCKFALL_SOUND", true),
		LogFile: GetEnv("BLOCKFALL_LOG_FILE", "blockfall.log"),
		Soak: SoakConfig{
			Duration:  GetEnvAsDuration("BLOCKFALL_SOAK_DURATION", 10*time.Minute),
			Step:      GetEnvAsDuration("BLOCKFALL_SOAK_STEP", 16*time.Millisecond),
			Seed:      GetEnvAsUint64("BLOCKFALL_SOAK_SEED", 1),
			InputRate: GetEnvAsFloat("BLOCKFALL_SOAK_INPUT_RATE", 0.2),
		},
	}
}

// BindFlags registers flags for the window settings on flags, defaulting to
// the values already in c.
func (c *Config) BindFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Scale, "scale", c.Scale, "Integer window scale factor.")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
	flags.BoolVar(&c.Sound, "sound", c.Sound, "Play a tone when lines are cleared.")
	flags.StringVar(&c.LogFile, "log", c.LogFile, "File to write the log to.")
}

// BindSoakFlags registers the soak run flags.
func (c *Config) BindSoakFlags(flags *flag.FlagSet) {
	flags.DurationVar(&c.Soak.Duration, "duration", c.Soak.Duration, "Simulated time to play for.")
	flags.DurationVar(&c.Soak.Step, "step", c.Soak.Step, "Simulated time between scheduler advances.")
	flags.Uint64Var(&c.Soak.Seed, "seed", c.Soak.Seed, "Seed for pieces and inputs.")
	flags.Float64Var(&c.Soak.InputRate, "input-rate", c.Soak.InputRate, "Chance of an input on each step, 0 to 1.")
}

// Validate clamps values a frontend cannot use.
func (c *Config) Validate() {
	if c.Scale < 1 {
		log.Printf("Invalid scale %d, using 1", c.Scale)
		c.Scale = 1
	}
	if c.Soak.Step <= 0 {
		log.Printf("Invalid soak step %s, using 16ms", c.Soak.Step)
		c.Soak.Step = 16 * time.Millisecond
	}
	c.Soak.InputRate = min(max(c.Soak.InputRate, 0), 1)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid unsigned integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
