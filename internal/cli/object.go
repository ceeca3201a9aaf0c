package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/met"
)

// objectCommand creates the single-object lookup command.
func (c *CLI) objectCommand() *cobra.Command {
	var refresh, noCache bool

	cmd := &cobra.Command{
		Use:   "object <id>",
		Short: "Show metadata for a single object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "object id must be an integer, got %q", args[0])
			}

			client := c.newMetClient(noCache)
			var obj *met.Object
			err = withSpinner(cmd.Context(), "Fetching object", func() error {
				var err error
				obj, err = client.Object(cmd.Context(), id, refresh)
				return err
			})
			if err != nil {
				return err
			}

			printObject(*obj)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the response cache")

	return cmd
}

// printObject prints the full detail view for an object.
func printObject(obj met.Object) {
	fmt.Println(StyleTitle.Render(obj.DisplayTitle()))
	printNewline()
	printKeyValue("Object ID", strconv.Itoa(obj.ObjectID))
	printKeyValue("Artist", obj.DisplayArtist())
	printKeyValue("Date", obj.DisplayDate())
	if obj.Department != "" {
		printKeyValue("Department", obj.Department)
	}
	if obj.ObjectName != "" {
		printKeyValue("Type", obj.ObjectName)
	}
	if obj.Medium != "" {
		printKeyValue("Medium", obj.Medium)
	}
	if obj.AccessionNumber != "" {
		printKeyValue("Accession", obj.AccessionNumber)
	}
	if obj.IsHighlight {
		printKeyValue("Highlight", StyleSuccess.Render("yes"))
	}
	if url := obj.ImageURL(); url != "" {
		printLink("Image", url)
	}
	if obj.ObjectURL != "" {
		printLink("Web", obj.ObjectURL)
	}
}
