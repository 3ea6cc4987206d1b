package main

import (
	"chat-room/domain"
	"chat-room/errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
	RoomBufferSize     int           `env:"ROOM_BUFFER_SIZE,default=64"`
	ObserverBufferSize int           `env:"OBSERVER_BUFFER_SIZE,default=64"`
	LeaseDuration      time.Duration `env:"LEASE_DURATION,default=1m"`
	RenewInterval      time.Duration `env:"RENEW_INTERVAL,default=20s"`
	DeliveryTimeout    time.Duration `env:"DELIVERY_TIMEOUT,default=5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	DefaultRoom        string        `env:"DEFAULT_ROOM,default=room"`
	// MONITOR_INTERVAL at 0 disables the room monitor
	MonitorInterval      time.Duration `env:"MONITOR_INTERVAL,default=30s"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=8"`
	// BOOT_AGENTS is a ';' separated list of name:description pairs
	BootAgents     string `env:"BOOT_AGENTS"`
	EchoToConsole  bool   `env:"ECHO_TO_CONSOLE,default=true"`
	ConsoleColours bool   `env:"CONSOLE_COLOURS,default=true"`
}

// Validate checks the settings go-env cannot express with tags.
func (c Config) Validate() error {
	if c.LeaseDuration <= 0 {
		return fmt.Errorf("LEASE_DURATION must be positive, got %s", c.LeaseDuration)
	}
	if c.RenewInterval <= 0 || c.RenewInterval >= c.LeaseDuration {
		return fmt.Errorf("RENEW_INTERVAL (%s) must be positive and shorter than LEASE_DURATION (%s)",
			c.RenewInterval, c.LeaseDuration)
	}
	if err := domain.RoomID(c.DefaultRoom).Validate(); err != nil {
		return fmt.Errorf("DEFAULT_ROOM: %w", err)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ParseBootAgents reads "name:description;name:description".
// Boot agents are never human.
func ParseBootAgents(raw string) ([]domain.AgentInfo, error) {
	var agents []domain.AgentInfo
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, description, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidBootAgent, entry)
		}
		agent := domain.AgentInfo{
			Name:            strings.TrimSpace(name),
			SelfDescription: strings.TrimSpace(description),
		}
		if err := domain.ValidateAgent(agent); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidBootAgent, err)
		}
		agents = append(agents, agent)
	}
	return agents, nil
}
