// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/finledger/internal/flagx"
)

// Config holds runtime settings for the finledger client.
type Config struct {
	ServerEndpointAddr string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
}

// LoadConfig builds a Config by applying defaults and overlaying
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string   server base URL (e.g., "http://localhost:8080")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
