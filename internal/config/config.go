// Package config loads daemon settings from flags, environment, and an
// optional config file. Control bindings are deliberately not configuration:
// they belong to the game and never persist across runs.
package config

import (
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the daemon's settings.
type Config struct {
	// Listen is the overlay HTTP server address.
	Listen string `mapstructure:"listen"`

	// PollHz is the pump rate in cycles per second.
	PollHz int `mapstructure:"poll_hz"`

	// DeviceDir is where candidate joystick nodes live.
	DeviceDir string `mapstructure:"device_dir"`

	// Headless disables the window; joystick input still runs.
	Headless bool `mapstructure:"headless"`

	// NoOverlay disables the overlay server entirely.
	NoOverlay bool `mapstructure:"no_overlay"`
}

// Interval converts the poll rate to a cycle duration.
func (c *Config) Interval() time.Duration {
	hz := c.PollHz
	if hz <= 0 {
		hz = 60
	}
	return time.Second / time.Duration(hz)
}

// OverlayURL is the browser-facing address of the overlay page.
func (c *Config) OverlayURL() string {
	addr := c.Listen
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

// Load parses flags and merges them with environment variables (INPUTSHIM_*)
// and an optional YAML config file. Flag > env > file > default.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("inputshim", pflag.ContinueOnError)
	flags.String("listen", ":8080", "overlay server address")
	flags.Int("poll-hz", 60, "input pump rate")
	flags.String("device-dir", "/dev/input", "joystick device directory")
	flags.Bool("headless", false, "run without a window")
	flags.Bool("no-overlay", false, "disable the overlay server")
	configFile := flags.String("config", "", "config file path")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("poll_hz", 60)
	v.SetDefault("device_dir", "/dev/input")
	v.SetDefault("headless", false)
	v.SetDefault("no_overlay", false)

	v.SetEnvPrefix("INPUTSHIM")
	v.AutomaticEnv()

	bind := map[string]string{
		"listen":     "listen",
		"poll_hz":    "poll-hz",
		"device_dir": "device-dir",
		"headless":   "headless",
		"no_overlay": "no-overlay",
	}
	for key, flag := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		log.Printf("Config loaded from %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
