package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Evgya/anime-analysis/pkg/catalog"
	apperrors "github.com/Evgya/anime-analysis/pkg/errors"
)

// lookupCommand creates the lookup command for resolving titles against the
// MyAnimeList catalog.
func (c *CLI) lookupCommand() *cobra.Command {
	var (
		configFile string
		idOnly     bool
		titleOnly  bool
		genresOnly bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [name]",
		Short: "Resolve an anime name against the MyAnimeList catalog",
		Long: `Resolve a free-text anime name against the MyAnimeList catalog.

The lookup command searches the catalog for the best match and prints its
ID, canonical title, and genres. A MyAnimeList API client ID is required;
set it via the MAL_CLIENT_ID environment variable or the catalog.client_id
key in the config file.

When the catalog has no match for the name, the command reports it without
failing: absence is an answer, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apperrors.ValidateQuery(args[0]); err != nil {
				return err
			}
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			client, err := cfg.newCatalogClient()
			if err != nil {
				return err
			}
			return c.runLookup(cmd.Context(), client, args[0], lookupOutput{
				idOnly:     idOnly,
				titleOnly:  titleOnly,
				genresOnly: genresOnly,
			})
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/anime-analysis/config.toml)")
	cmd.Flags().BoolVar(&idOnly, "id-only", false, "print only the catalog ID")
	cmd.Flags().BoolVar(&titleOnly, "title-only", false, "print only the canonical title")
	cmd.Flags().BoolVar(&genresOnly, "genres-only", false, "print only the genre list")

	return cmd
}

type lookupOutput struct {
	idOnly     bool
	titleOnly  bool
	genresOnly bool
}

// runLookup resolves the name and prints the requested fields.
func (c *CLI) runLookup(ctx context.Context, client *catalog.Client, name string, out lookupOutput) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching catalog for %q...", name))
	spinner.Start()

	rec, ok, err := client.Search(ctx, name)
	if err != nil {
		spinner.StopWithError("Catalog lookup failed")
		return fmt.Errorf("lookup %q: %w", name, err)
	}
	if !ok {
		spinner.Stop()
		printWarning("No catalog entry found for %q", name)
		return nil
	}

	var genres string
	genresFound := false
	if !out.idOnly && !out.titleOnly {
		genres, genresFound, err = client.GenresByID(ctx, rec.ID)
		if err != nil {
			spinner.StopWithError("Catalog lookup failed")
			return fmt.Errorf("lookup genres for %q: %w", name, err)
		}
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Resolved %q", rec.Title))

	switch {
	case out.idOnly:
		fmt.Println(rec.ID)
	case out.titleOnly:
		fmt.Println(rec.Title)
	case out.genresOnly:
		fmt.Println(genres)
	default:
		printKeyValue("ID", strconv.Itoa(rec.ID))
		printKeyValue("Title", rec.Title)
		if genresFound {
			printKeyValue("Genres", genres)
		} else {
			printKeyValue("Genres", StyleDim.Render("—"))
		}
	}
	return nil
}
