package main

import (
	"chat-room/domain"
	"chat-room/infrastructure/websocket/server"
	"chat-room/runtime"
	"chat-room/runtime/workers"
	"chat-room/sink"
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the process lifecycle,
// so deferred cleanups always execute before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	bootAgents, err := ParseBootAgents(config.BootAgents)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// 3. Supervision & room directory
	sup := workers.NewSupervisor(log, config.RestartInterval)
	directory := runtime.NewDirectory(log, sup, runtime.SystemClock{},
		config.RoomBufferSize, config.LeaseDuration, config.DeliveryTimeout)
	directory.Start(ctx)
	// stop first: the console renewer runs on ctx and Wait covers it
	defer func() {
		stop()
		directory.Stop()
		log.Info("Program stopped cleanly")
	}()

	if config.MonitorInterval > 0 {
		sup.Start(ctx, workers.NewRoomMonitor(log, directory, config.MonitorInterval, config.LowCapacityThreshold))
	}

	// 4. Default room, console echo and boot agents
	room, err := directory.Room(domain.RoomID(config.DefaultRoom))
	if err != nil {
		return fmt.Errorf("default room unavailable: %w", err)
	}
	if config.EchoToConsole {
		console := sink.NewConsoleObserver(log, os.Stdout, room.ID(), config.ConsoleColours)
		if err := room.Subscribe(ctx, console); err != nil {
			return fmt.Errorf("console subscription failed: %w", err)
		}
		sup.Start(ctx, workers.NewLeaseRenewer(log, room, console, config.RenewInterval))
	}
	for _, agent := range bootAgents {
		if err := room.Join(ctx, agent); err != nil {
			return fmt.Errorf("boot agent %q failed to join: %w", agent.Name, err)
		}
	}

	// 5. Websocket server
	roomServer := server.NewRoomServer(log, directory,
		config.ObserverBufferSize, config.RenewInterval, config.WriteTimeout)
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           roomServer.Routes(),
		ReadHeaderTimeout: config.WriteTimeout,
		// sockets follow the process lifetime, Shutdown does not track them
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting websocket server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.WriteTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "err", err)
	}
	return nil
}
