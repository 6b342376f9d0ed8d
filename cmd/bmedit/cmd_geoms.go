package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
)

func newGeomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geoms",
		Short: "List the geometry hierarchy entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			geoms, err := level.LoadGeoms(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range geoms {
				g := &geoms[i]
				parent := "-"
				if g.Inherited() {
					parent = fmt.Sprintf("%d", g.ParentIndex)
				}
				fmt.Fprintf(out, "%4d  %-24s type=%#010x prim=%d depth=%d parent=%s\n",
					i, g.Name, g.TypeID, g.PrimitiveID, g.DepthLevel, parent)
			}
			fmt.Fprintf(out, "%d entities\n", len(geoms))
			return nil
		},
	}
}
