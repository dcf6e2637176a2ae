package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagen/pkg/buildinfo"
	"github.com/matzehuels/pagen/pkg/cache"
	"github.com/matzehuels/pagen/pkg/pipeline"
	"github.com/matzehuels/pagen/pkg/server"
)

type serveOptions struct {
	addr         string
	timeout      time.Duration
	profile      string
	cacheEntries int
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve page generation over HTTP",
		Long: `Serve page generation over HTTP.

Routes:
  GET  /healthz    liveness probe
  GET  /version    build information
  GET  /generate   generate a page, options from query parameters
  POST /generate   same, options from a JSON or TOML body
  GET  /stats      generate a page and return its statistics

A profile sets the options every request starts from. Rendered images are
kept in an in-memory cache for the lifetime of the server.`,
		Example: `  pagen serve
  pagen serve --addr 127.0.0.1:9000 --profile deep.toml
  curl 'localhost:8080/generate?seed=42&format=html'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.addr, "addr", server.DefaultAddr, "listen address")
	fl.DurationVar(&opts.timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	fl.StringVar(&opts.profile, "profile", "", "TOML profile with the base options of every request")
	fl.IntVar(&opts.cacheEntries, "cache-entries", cache.DefaultMemoryEntries, "number of rendered images kept in memory")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, o *serveOptions) error {
	base := pipeline.DefaultOptions()
	if o.profile != "" {
		if err := pipeline.LoadProfile(o.profile, &base); err != nil {
			return err
		}
	}
	if err := base.Validate(); err != nil {
		return err
	}

	runner := pipeline.NewRunner(cache.NewMemoryCache(o.cacheEntries), c.Logger)
	runner.Keyer = cache.NewScopedKeyer(runner.Keyer, buildinfo.CacheScope())
	defer runner.Close()

	srv := server.New(runner, c.Logger, server.Config{
		Addr:    o.addr,
		Timeout: o.timeout,
		Base:    base,
	})
	return srv.ListenAndServe(cmd.Context())
}
