package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockcanvas/pkg/api"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [scene.json]",
		Short: "Serve a scene over an HTTP JSON API",
		Long: `Serve a scene over an HTTP JSON API.

The server holds one canvas in memory. Requests navigate, select, center and
drag it; changes are not written back to the scene file.

Routes:
  GET  /healthz
  GET  /blocks, /blocks/{id}, /blocks/{id}/rows?pixel_y=Y|row=N
  POST /navigate/{direction}, /select/{id}, /center/{id}
  POST /blocks/{id}/drag, /blocks/{id}/drop
  GET  /viewport
  POST /viewport/pan, /viewport/release`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := c.loadCanvas(args[0])
			if err != nil {
				return err
			}
			srv := api.New(cv, api.WithLogger(c.Logger))
			printInfo(cmd.OutOrStdout(), "serving %s on %s", StyleHighlight.Render(args[0]), StyleValue.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
