package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr string `envconfig:"ROSTER_ADDR" default:"localhost:8080"`
	Room string `envconfig:"ROSTER_ROOM" default:"room"`
	// ROSTER_COLOURS enables the coloured section headers
	Colours bool          `envconfig:"ROSTER_COLOURS" default:"true"`
	Timeout time.Duration `envconfig:"ROSTER_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// URL is the websocket endpoint of the configured room.
func (c Config) URL() string {
	return fmt.Sprintf("ws://%s/rooms/%s/ws", c.Addr, url.PathEscape(c.Room))
}
