package cli

import (
	"github.com/spf13/cobra"

	"github.com/Evgya/anime-analysis/internal/server"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configFile  string
		addr        string
		artifactDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API exposing catalog lookups and chart rendering.

Endpoints:
  GET  /healthz               liveness probe
  GET  /api/anime/{name}      resolve a name against the catalog
  POST /api/charts/{kind}     render a CSV body as a chart artifact
  GET  /api/charts/{file}     fetch a rendered artifact

Catalog lookups require a MyAnimeList client ID; without one the anime
routes respond with an error while chart rendering keeps working.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if artifactDir != "" {
				cfg.Server.ArtifactDir = artifactDir
			}

			client, err := cfg.newCatalogClient()
			if err != nil {
				c.Logger.Warn("catalog lookups disabled", "reason", err)
				client = nil
			}

			srv := server.New(server.Config{
				Addr:        cfg.Server.Addr,
				ArtifactDir: cfg.Server.ArtifactDir,
				Catalog:     client,
				Logger:      c.Logger,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/anime-analysis/config.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&artifactDir, "artifacts", "", "artifact directory (default charts)")

	return cmd
}
