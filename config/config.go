// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// MafftConfig is settings for invoking mafft
type MafftConfig struct {
	// the command required to invoke mafft
	Cmd string `mapstructure:"cmd"`
}

// Config is the root-level settings struct and is a mix of settings
// bound from command line flags (see /cmd) and defaults
type Config struct {
	// mafft settings
	Mafft MafftConfig `mapstructure:"mafft"`

	// the directory holding the temporary alignment files
	TempDir string `mapstructure:"temp-dir"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() Config {
	viper.SetDefault("mafft.cmd", "mafft")
	viper.SetDefault("temp-dir", os.TempDir())

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
