package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the property stream against the type catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			cat, err := level.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			objects, _, err := level.LoadScene(cfg, cat)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d objects decoded against %d types\n", len(objects), cat.Len())
			return nil
		},
	}
}
