package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shreyass0007/gitstreak/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	home       string
	configFile string
	quiet      bool
}

// newAppFunc builds the App for a command from the resolved settings
type newAppFunc func(settings *config.Settings, stdout, stderr io.Writer) *App

func defaultNewApp(settings *config.Settings, stdout, stderr io.Writer) *App {
	return NewApp(AppOptions{
		Settings: settings,
		Stdout:   stdout,
		Stderr:   stderr,
	})
}

func newRootCmd(newApp newAppFunc) *cobra.Command {
	flags := &rootFlags{}

	// settings resolves environment then flags; called by each command
	settings := func(cmd *cobra.Command) *config.Settings {
		s := config.NewSettings()
		s.VersionInfo = config.VersionInfo{Version: version, Commit: commit, Date: date}
		s.LoadFromEnvironment()

		if cmd.Flags().Changed("home") {
			s.Home = flags.home
		}
		if cmd.Flags().Changed("config") {
			s.ConfigFile = flags.configFile
		}
		if cmd.Flags().Changed("quiet") {
			s.Quiet = flags.quiet
		}
		return s
	}
	build := func(cmd *cobra.Command) *App {
		return newApp(settings(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	runCmd := newRunCmd(build)

	cmd := &cobra.Command{
		Use:   "gitstreak",
		Short: "Keep a daily contribution streak going",
		Long: `gitstreak appends a line to a tracked file in a git repository, commits it
and pushes it, a random number of times per run. It counts consecutive days
with a fully successful run as a streak.

Running gitstreak without a subcommand is the same as "gitstreak run".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCmd.RunE,
	}

	cmd.PersistentFlags().StringVar(&flags.home, "home", "", "directory holding config, state, log and history (env GITSTREAK_HOME)")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "configuration file, .json or .yaml (env GITSTREAK_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only print errors and the run summary (env GITSTREAK_QUIET)")

	cmd.AddCommand(runCmd)
	cmd.AddCommand(newInitCmd(build))
	cmd.AddCommand(newStatusCmd(build))
	cmd.AddCommand(newHistoryCmd(build))
	cmd.AddCommand(newDaemonCmd(build))
	cmd.AddCommand(newServiceCmd(build))
	cmd.AddCommand(newVersionCmd(build))
	return cmd
}

func newVersionCmd(build func(*cobra.Command) *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			build(cmd).ShowVersion()
		},
	}
}

// execute runs cmd with a context cancelled on SIGINT, SIGTERM or SIGHUP
// and maps the outcome to an exit status.
func execute(cmd *cobra.Command) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(c)

	go func() {
		select {
		case sig := <-c:
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\nReceived signal %v, stopping gitstreak...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd(defaultNewApp)))
}
