package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"banter/internal/config"
	"banter/internal/persona"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage personality profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in personality profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range persona.Builtins() {
			fmt.Printf("  %-12s %s\n", p.ID, p.Description)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a built-in profile as yaml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := persona.Builtin(args[0])
		if !ok {
			return fmt.Errorf("no built-in profile %q", args[0])
		}
		data, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var profileApplyCmd = &cobra.Command{
	Use:   "apply [id-or-file]",
	Short: "Apply a profile to the configuration file",
	Long: `Copies a profile's disposition into the configuration, clamping values
into range, and saves the result. The argument is a built-in profile ID or a
path to a yaml profile file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := persona.Builtin(args[0])
		if !ok {
			var err error
			p, err = persona.LoadProfile(args[0])
			if err != nil {
				return fmt.Errorf("%q is neither a built-in profile nor a readable profile file: %w", args[0], err)
			}
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		p.ApplyTo(cfg)
		if err := cfg.Save(configPath); err != nil {
			return err
		}

		logger.Info("profile applied",
			zap.String("profile", p.ID),
			zap.String("config", configPath))
		fmt.Printf("applied profile %q to %s\n", p.ID, configPath)
		return nil
	},
}

var profileSnapshotCmd = &cobra.Command{
	Use:   "snapshot [id]",
	Short: "Export the current configuration as a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		p := persona.SnapshotFrom(cfg, args[0], "snapshot of "+configPath)
		out := args[0] + ".yaml"
		if err := p.Save(out); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileApplyCmd)
	profileCmd.AddCommand(profileSnapshotCmd)
}
