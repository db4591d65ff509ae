package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/git"
)

func newInitCmd(build func(*cobra.Command) *App) *cobra.Command {
	var (
		repo   string
		branch string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the configuration and create the state files",
		Long: `Write a configuration record pointing at a repository (the current directory
unless --repo is given) and create streak.txt and last_commit.txt in the home
directory. An existing configuration is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := build(cmd)
			defer func() { _ = app.Close() }()

			if err := app.Initialize(); err != nil {
				return err
			}

			if repo == "" {
				wd, err := app.getwd()
				if err != nil {
					return err
				}
				repo = wd
			}
			absRepo, err := filepath.Abs(repo)
			if err != nil {
				return err
			}

			cfg := config.Defaults(absRepo)
			if branch != "" {
				cfg.Branch = branch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			store := app.ConfigStore()
			if _, err := os.Stat(store.Path()); err == nil && !force {
				app.Logger.WarningToUser("Configuration already exists at %s, use --force to overwrite", store.Path())
			} else {
				if err := store.Save(cfg); err != nil {
					return err
				}
				app.Logger.Success("Wrote configuration to %s", store.Path())
			}

			app.StateStore().EnsureInitialized()

			if err := git.CheckRepository(absRepo); err != nil {
				app.Logger.WarningToUser("Repository %s does not exist yet", absRepo)
				return nil
			}
			if ok, err := git.IsRepository(cmd.Context(), app.executor, absRepo); err != nil || !ok {
				app.Logger.WarningToUser("%s is not a git repository", absRepo)
				return nil
			}
			if url, err := git.RemoteURL(absRepo, cfg.Remote); err != nil {
				app.Logger.WarningToUser("Remote %q is not configured: %v", cfg.Remote, err)
			} else {
				app.Logger.Success("Commits will be pushed to %s (%s) branch %s", cfg.Remote, url, cfg.Branch)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "repository to commit to (default: current directory)")
	cmd.Flags().StringVar(&branch, "branch", "", "branch to push to (default: main)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration")
	return cmd
}
