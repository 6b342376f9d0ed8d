package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/types"
)

func newTypesCmd() *cobra.Command {
	var kindFilter string
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the registered type descriptors",
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

			var kind types.Kind
			if kindFilter != "" {
				k, ok := types.ParseKind(kindFilter)
				if !ok {
					return fmt.Errorf("unknown kind %q", kindFilter)
				}
				kind = k
			}

			out := cmd.OutOrStdout()
			var shown int
			cat.ForEach(func(t *types.Type) bool {
				if kind != types.KindInvalid && t.Kind != kind {
					return true
				}
				if nameFilter != "" && !strings.Contains(t.Name, nameFilter) {
					return true
				}
				fmt.Fprintln(out, describeType(t))
				shown++
				return true
			})
			fmt.Fprintf(out, "%d types\n", shown)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFilter, "kind", "", "only show types of this kind (primitive, enum, array, complex)")
	cmd.Flags().StringVar(&nameFilter, "name", "", "only show types whose name contains this substring")
	return cmd
}

func describeType(t *types.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-36s %-9s", t.Name, t.Kind)
	if t.Hash != 0 {
		fmt.Fprintf(&b, " %#010x", t.Hash)
	} else {
		b.WriteString("           ")
	}
	switch t.Kind {
	case types.KindPrimitive:
		fmt.Fprintf(&b, "  %s", t.Op)
	case types.KindEnum:
		fmt.Fprintf(&b, "  %d entries", len(t.Entries))
	case types.KindArray:
		if t.Capacity > 0 {
			fmt.Fprintf(&b, "  [%d]%s", t.Capacity, t.ElementName)
		} else {
			fmt.Fprintf(&b, "  []%s", t.ElementName)
		}
	case types.KindComplex:
		fmt.Fprintf(&b, "  %d fields", len(t.Fields))
		if t.ParentName != "" {
			fmt.Fprintf(&b, " : %s", t.ParentName)
		}
		if t.AllowUnexposed {
			b.WriteString(" +unexposed")
		}
	}
	return b.String()
}
