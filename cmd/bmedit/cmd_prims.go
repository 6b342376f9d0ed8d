package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
)

func newPrimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prims",
		Short: "Classify the chunks of the primitive container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			chunks, err := level.LoadChunks(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range chunks {
				detail := ""
				switch {
				case c.Vertex != nil:
					detail = fmt.Sprintf("format=%s stride=%d", c.Vertex.Format, c.Vertex.Format.Stride())
				case c.IndexHeader != nil:
					detail = fmt.Sprintf("indices=%d", c.IndexHeader.IndicesCount)
				}
				fmt.Fprintf(out, "%4d  %-13s %8d bytes  %s\n", c.Index, c.Kind, len(c.Buffer), detail)
			}
			fmt.Fprintf(out, "%d chunks\n", len(chunks))
			return nil
		},
	}
}
