// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// DefaultScoreThreshold is the minimum relative alignment score a
// placement needs to survive filtering, unless overridden.
const DefaultScoreThreshold = 0.95

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line.
type Config struct {
	// the minimum relative alignment score for a placement to survive
	ScoreThreshold float64 `mapstructure:"score-threshold"`

	// whether to restrict ambiguous features to candidates on their
	// prior-assembly chromosome
	UsePriorInfo bool `mapstructure:"use-prior-info"`

	// the resolution mode: "standard" or "dbsnp"
	Mode string `mapstructure:"mode"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments.
func New() *Config {
	viper.SetDefault("score-threshold", DefaultScoreThreshold)
	viper.SetDefault("use-prior-info", false)
	viper.SetDefault("mode", "standard")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return &c
}
