package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/muurk/wlaninfo/internal/config"
	"github.com/muurk/wlaninfo/internal/ui"
)

func newConfigCmd(f *rootFlags, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Manage the wlaninfo configuration file.

The file holds default flag values, backend settings and BSSID aliases.
Passwords are never stored.`,
	}
	cmd.AddCommand(newConfigPathCmd(f, stdout))
	cmd.AddCommand(newConfigInitCmd(f, stderr))
	cmd.AddCommand(newConfigAliasCmd(f, stderr))
	return cmd
}

func newConfigPathCmd(f *rootFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.configPath
			if path == "" {
				var err error
				if path, err = config.GetConfigPath(); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(stdout, path)
			return err
		},
	}
}

func newConfigInitCmd(f *rootFlags, stderr io.Writer) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Example: `  # Create the default config
  wlaninfo config init

  # Replace an existing config
  wlaninfo config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(f.configPath, force)
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}
			ui.NewReporter(stderr).Success("Created config file: %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigAliasCmd(f *rootFlags, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "alias NAME BSSID",
		Short: "Save a name for a BSSID",
		Long: `Save a name for a BSSID. The name can then be passed to -bssid:

  wlaninfo config alias office 3c:37:86:aa:bb:04
  wlaninfo -action associate -bssid office`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			if err := reg.SetAlias(args[0], args[1]); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}
			ui.NewReporter(stderr).Success("Saved alias %s -> %s in %s", args[0], reg.Aliases[args[0]], reg.Path())
			return nil
		},
	}
}
