package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/musecli/muse/pkg/met"
)

// departmentsCommand creates the department listing command.
func (c *CLI) departmentsCommand() *cobra.Command {
	var refresh, noCache bool

	cmd := &cobra.Command{
		Use:   "departments",
		Short: "List the Met's curatorial departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := c.newMetClient(noCache)

			var depts []met.Department
			err := withSpinner(cmd.Context(), "Fetching departments", func() error {
				var err error
				depts, err = client.Departments(cmd.Context(), refresh)
				return err
			})
			if err != nil {
				return err
			}

			sort.Slice(depts, func(i, j int) bool {
				return depts[i].DepartmentID < depts[j].DepartmentID
			})

			printNewline()
			for _, d := range depts {
				id := StyleNumber.Render(fmt.Sprintf("%4d", d.DepartmentID))
				fmt.Println("  " + id + "  " + StyleValue.Render(d.DisplayName))
			}
			printNewline()
			printNextStep("Search within one", "muse search <query> --department <id>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the response cache")

	return cmd
}
