package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/flipclock/pkg/preview"
	"github.com/go-drift/flipclock/pkg/render"
)

// DefaultAddr is the preview server listen address.
const DefaultAddr = "localhost:8080"

func newServeCommand(global *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live clock face over HTTP",
		Long: `Serve a live clock face.

Routes:
  /frame.png  the current frame
  /state      the face state as JSON
  /metrics    Prometheus metrics
  /healthz    health check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := loadConfig(global)
			if err != nil {
				return err
			}

			face := resolved.NewFace()
			defer face.Dispose()
			r := render.New()
			defer r.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := preview.New(face, r, preview.WithFPS(resolved.FPS))
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", DefaultAddr, "listen address")
	return cmd
}
