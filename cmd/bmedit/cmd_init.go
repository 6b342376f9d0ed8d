package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(flagConfig); err == nil {
				return fmt.Errorf("%s already exists", flagConfig)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := level.WriteConfig(flagConfig, level.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagConfig)
			return nil
		},
	}
}
