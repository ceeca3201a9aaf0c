package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/musecli/muse/pkg/met"
)

// defaultPageSize is the number of results shown per page.
const defaultPageSize = 24

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	department      int
	hasImages       bool
	highlight       bool
	onView          bool
	artistOrCulture bool
	titleOnly       bool
	tagsOnly        bool
	medium          string
	geoLocation     string
	dateBegin       int
	dateEnd         int
	page            int
	pageSize        int
	interactive     bool
	refresh         bool
	noCache         bool
}

// searchCommand creates the collection search command.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{page: 1, pageSize: defaultPageSize}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the Met collection",
		Long: `Search the Met collection by keyword. Results are paginated; use --page to
move through them, or --interactive to browse and select an object directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd.Context(), strings.Join(args, " "), cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.department, "department", "d", 0, "restrict to a department id")
	cmd.Flags().BoolVar(&opts.hasImages, "has-images", false, "only objects with images")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "only collection highlights")
	cmd.Flags().BoolVar(&opts.onView, "on-view", false, "only objects currently on view")
	cmd.Flags().BoolVar(&opts.artistOrCulture, "artist-or-culture", false, "match query against artist or culture")
	cmd.Flags().BoolVar(&opts.titleOnly, "title", false, "match query against titles only")
	cmd.Flags().BoolVar(&opts.tagsOnly, "tags", false, "match query against tags only")
	cmd.Flags().StringVar(&opts.medium, "medium", "", "restrict by medium (e.g. \"Paintings\")")
	cmd.Flags().StringVar(&opts.geoLocation, "geo", "", "restrict by geographic location")
	cmd.Flags().IntVar(&opts.dateBegin, "date-begin", 0, "earliest object date (use with --date-end)")
	cmd.Flags().IntVar(&opts.dateEnd, "date-end", 0, "latest object date (use with --date-begin)")
	cmd.Flags().IntVar(&opts.page, "page", opts.page, "result page")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", opts.pageSize, "results per page")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse results interactively")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")

	return cmd
}

func (c *CLI) runSearch(ctx context.Context, query string, cmd *cobra.Command, opts *searchOpts) error {
	client := c.newMetClient(opts.noCache)

	req := met.SearchOptions{
		Query:           query,
		HasImages:       opts.hasImages,
		IsHighlight:     opts.highlight,
		IsOnView:        opts.onView,
		ArtistOrCulture: opts.artistOrCulture,
		TitleOnly:       opts.titleOnly,
		TagsOnly:        opts.tagsOnly,
		Medium:          opts.medium,
		GeoLocation:     opts.geoLocation,
	}
	if cmd.Flags().Changed("department") {
		req.DepartmentID = &opts.department
	}
	if cmd.Flags().Changed("date-begin") && cmd.Flags().Changed("date-end") {
		req.DateBegin = &opts.dateBegin
		req.DateEnd = &opts.dateEnd
	} else if cmd.Flags().Changed("date-begin") || cmd.Flags().Changed("date-end") {
		printWarning("--date-begin and --date-end must be used together, ignoring")
	}

	var result *met.SearchResult
	err := withSpinner(ctx, "Searching collection", func() error {
		var err error
		result, err = client.Search(ctx, req, opts.refresh)
		return err
	})
	if err != nil {
		return err
	}

	if result.Total == 0 {
		printInfo("No results for %q", query)
		return nil
	}

	ids := met.Page(result.ObjectIDs, opts.page, opts.pageSize)
	totalPages := met.TotalPages(len(result.ObjectIDs), opts.pageSize)
	if len(ids) == 0 {
		printWarning("Page %d is out of range (%d pages)", opts.page, totalPages)
		return nil
	}

	objects, err := c.fetchObjects(ctx, client, ids, opts.refresh)
	if err != nil {
		return err
	}

	if opts.interactive {
		return c.browseObjects(objects)
	}

	printNewline()
	for _, obj := range objects {
		printObjectRow(obj)
	}
	printNewline()
	printPageStats(result.Total, opts.page, totalPages)
	if opts.page < totalPages {
		printNextStep("Next page", fmt.Sprintf("muse search %q --page %d", query, opts.page+1))
	}
	return nil
}

// fetchObjects resolves a page of object IDs to full records. Objects that
// disappeared between search and fetch are skipped.
func (c *CLI) fetchObjects(ctx context.Context, client *met.Client, ids []int, refresh bool) ([]met.Object, error) {
	objects := make([]met.Object, 0, len(ids))
	err := withSpinner(ctx, fmt.Sprintf("Fetching %d objects", len(ids)), func() error {
		prog := newProgress(c.Logger)
		for _, id := range ids {
			obj, err := client.Object(ctx, id, refresh)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.Logger.Debug("skipping object", "id", id, "err", err)
				continue
			}
			objects = append(objects, *obj)
		}
		prog.done(fmt.Sprintf("Fetched %d objects", len(objects)))
		return nil
	})
	return objects, err
}

// printObjectRow prints one search result line.
func printObjectRow(obj met.Object) {
	id := StyleNumber.Render(fmt.Sprintf("%8d", obj.ObjectID))
	title := StyleValue.Render(truncate(obj.DisplayTitle(), 48))
	meta := StyleDim.Render(fmt.Sprintf("%s · %s", obj.DisplayArtist(), obj.DisplayDate()))
	fmt.Println("  " + id + "  " + title + "  " + meta)
}

// browseObjects runs the interactive result browser and prints the
// selected object.
func (c *CLI) browseObjects(objects []met.Object) error {
	model := NewObjectListModel(objects)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}
	m, ok := final.(ObjectListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	printNewline()
	printObject(*m.Selected)
	return nil
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
