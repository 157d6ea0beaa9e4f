package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Hari-prashath-123/art-finity/internal/components"
)

func newSectionsCmd() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List animated elements and their assigned variants",
		Long: `Build the landing page, run the direction assigner and print every
animated element with its section and final variant. With --summary, print
one row per section in the alternating order instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, assignments := components.BuildLandingPage(components.LandingPageConfig{})

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			if summary {
				table.Header("#", "Section", "Variant", "Elements")
				for _, a := range assignments {
					table.Append(strconv.Itoa(a.Index), a.Section, a.Variant.String(), strconv.Itoa(a.Elements))
				}
				return table.Render()
			}

			table.Header("ID", "Section", "Variant", "Pinned")
			for _, el := range reg.Elements() {
				pinned := ""
				if el.Pinned {
					pinned = "yes"
				}
				table.Append(string(el.ID), el.Section, el.Variant.String(), pinned)
			}
			if err := table.Render(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d animated elements\n", reg.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "one row per section")
	return cmd
}
