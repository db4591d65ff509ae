package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"github.com/shreyass0007/gitstreak/internal/schedule"
)

const serviceName = "gitstreak"

// stopTimeout bounds how long Stop waits for a run in progress
const stopTimeout = 30 * time.Second

// program implements service.Interface around the daemon loop
type program struct {
	run func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func (p *program) Start(s service.Service) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Start should not block. Do the actual work async.
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		if err := p.run(ctx); err != nil {
			p.mu.Lock()
			p.err = err
			p.mu.Unlock()
		}
	}()
	return nil
}

func (p *program) Stop(s service.Service) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		return fmt.Errorf("daemon did not stop within %s", stopTimeout)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// serviceConfig describes the OS service that runs "gitstreak service run"
func serviceConfig(home, sched string, user bool) *service.Config {
	cfg := &service.Config{
		Name:        serviceName,
		DisplayName: "gitstreak daily commits",
		Description: "Runs gitstreak on a cron schedule to keep a contribution streak going",
		Arguments:   []string{"service", "run", "--home", home, "--schedule", sched},
		Option:      service.KeyValue{},
	}
	if user {
		cfg.Option["UserService"] = true
	}
	return cfg
}

func newServiceCmd(build func(*cobra.Command) *App) *cobra.Command {
	var (
		sched string
		user  bool
	)

	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage gitstreak as a system service",
		Long: `Install, uninstall, start, stop, or check the status of the gitstreak daemon
as a system service.

On Windows, this creates/manages a Windows Service.
On Linux/macOS, this creates/manages a systemd/launchd service.`,
	}
	cmd.PersistentFlags().StringVar(&sched, "schedule", schedule.DefaultSchedule, "cron schedule the service runs on")
	cmd.PersistentFlags().BoolVar(&user, "user", true, "install as a per-user service instead of a system-wide one")

	// open resolves settings and builds the service handle
	open := func(cmd *cobra.Command) (*App, service.Service, error) {
		app := build(cmd)
		if err := app.Initialize(); err != nil {
			return app, nil, err
		}
		if _, err := schedule.Parse(sched); err != nil {
			return app, nil, err
		}

		prg := &program{run: func(ctx context.Context) error {
			return app.Daemon(ctx, sched, false)
		}}
		s, err := service.New(prg, serviceConfig(app.Settings.Home, sched, user))
		if err != nil {
			return app, nil, fmt.Errorf("failed to create service: %w", err)
		}
		return app, s, nil
	}

	action := func(use, short string, fn func(app *App, s service.Service) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app, s, err := open(cmd)
				defer func() { _ = app.Close() }()
				if err != nil {
					return err
				}
				return fn(app, s)
			},
		}
	}

	cmd.AddCommand(action("install", "Install the service", func(app *App, s service.Service) error {
		if err := s.Install(); err != nil {
			return fmt.Errorf("failed to install service: %w", err)
		}
		app.Logger.Success("Service installed with schedule %q", sched)
		app.Logger.StatusMessage("To start the service, run:")
		app.Logger.StatusMessage("  gitstreak service start")
		return nil
	}))

	cmd.AddCommand(action("uninstall", "Stop and remove the service", func(app *App, s service.Service) error {
		// Try to stop first
		_ = s.Stop()

		if err := s.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall service: %w", err)
		}
		app.Logger.Success("Service uninstalled")
		return nil
	}))

	cmd.AddCommand(action("start", "Start the installed service", func(app *App, s service.Service) error {
		if err := s.Start(); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
		app.Logger.Success("Service started")
		return nil
	}))

	cmd.AddCommand(action("stop", "Stop the running service", func(app *App, s service.Service) error {
		if err := s.Stop(); err != nil {
			return fmt.Errorf("failed to stop service: %w", err)
		}
		app.Logger.Success("Service stopped")
		return nil
	}))

	cmd.AddCommand(action("status", "Show whether the service is running", func(app *App, s service.Service) error {
		status, err := s.Status()
		if err != nil {
			return fmt.Errorf("failed to get service status: %w", err)
		}
		app.Logger.StatusMessage("Service status: %s", describeStatus(status))
		return nil
	}))

	cmd.AddCommand(&cobra.Command{
		Use:    "run",
		Short:  "Run the daemon under the service manager",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, s, err := open(cmd)
			defer func() { _ = app.Close() }()
			if err != nil {
				return err
			}
			// Blocks until the service manager stops us
			return s.Run()
		},
	})

	return cmd
}

func describeStatus(status service.Status) string {
	switch status {
	case service.StatusRunning:
		return "running"
	case service.StatusStopped:
		return "stopped"
	case service.StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("%v", status)
	}
}
