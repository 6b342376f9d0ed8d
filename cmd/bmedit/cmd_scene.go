package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/scene"
)

func newSceneCmd() *cobra.Command {
	var cpuprofile bool

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Decode the full level and print the object tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
			}
			cfg, err := loadProject()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			cat, err := level.LoadCatalog(cfg)
			if err != nil {
				return err
			}
			lvl, err := level.LoadLevel(cfg, cat, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(lvl.Objects) > 0 {
				printTree(out, lvl.Objects, 0)
			}
			fmt.Fprintf(out, "%d objects, %d geometry entities, %d chunks\n",
				len(lvl.Objects), len(lvl.Geoms), len(lvl.Chunks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cpuprofile, "cpuprofile", false, "write a CPU profile to the working directory")
	return cmd
}

func printTree(w io.Writer, objects []scene.Object, root int) {
	scene.Walk(objects, root, func(idx, depth int) {
		o := &objects[idx]
		typeName := fmt.Sprintf("%#08x", o.TypeID)
		if o.Properties != nil && o.Properties.Type != nil {
			typeName = o.Properties.Type.Name
		}
		line := strings.Repeat("  ", depth) + o.Name + " <" + typeName + ">"
		if len(o.Controllers) > 0 {
			names := make([]string, len(o.Controllers))
			for i, c := range o.Controllers {
				names[i] = c.Name
			}
			line += " [" + strings.Join(names, ", ") + "]"
		}
		fmt.Fprintln(w, line)
	})
}
