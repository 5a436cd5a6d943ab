package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/render"
)

// errTerminalOutput is returned when binary output would go to a terminal.
var errTerminalOutput = stderrors.New("refusing to write image data to a terminal; use --out or redirect stdout")

type renderFlags struct {
	at       string
	out      string
	frames   int
	interval time.Duration
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the clock face to PNG or animated GIF",
		Long: `Render the clock face at a point in time.

With --frames 1 (the default) the running flips are settled and a single
PNG is written. With more frames, an animated GIF of the flip is written,
one frame per --interval starting at the moment the time is set.`,
		Example: `  flipclock render --at 2024-01-02T15:04:05Z --out clock.png
  flipclock render --frames 40 --out flip.gif`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, global, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.at, "at", "", "time to render, RFC 3339 (default: now)")
	f.StringVarP(&flags.out, "out", "o", "-", `output file, "-" for stdout`)
	f.IntVarP(&flags.frames, "frames", "n", 1, "number of frames; more than one writes a GIF")
	f.DurationVar(&flags.interval, "interval", 0, "time between GIF frames (default: 1/fps)")
	return cmd
}

func runRender(cmd *cobra.Command, global *globalFlags, flags *renderFlags) error {
	if flags.frames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", flags.frames)
	}
	resolved, err := loadConfig(global)
	if err != nil {
		return err
	}

	at := time.Now()
	if flags.at != "" {
		if at, err = time.Parse(time.RFC3339, flags.at); err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}
	interval := flags.interval
	if interval <= 0 {
		interval = time.Second / time.Duration(resolved.FPS)
	}

	w, closeOut, err := openOutput(cmd.OutOrStdout(), flags.out)
	if err != nil {
		return err
	}
	defer closeOut()

	clk := clockwork.NewFakeClockAt(at)
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	face := resolved.NewFace()
	defer face.Dispose()
	if err := face.SetTime(at); err != nil {
		return err
	}

	r := render.New()
	defer r.Close()

	log := slog.Default().With("system", "render")
	if flags.frames == 1 {
		clk.Advance(resolved.Duration)
		face.Tick()
		img, err := r.Render(face)
		if err != nil {
			return err
		}
		log.Debug("rendered frame", "at", at, "size", img.Bounds().Size())
		return render.EncodePNG(w, img)
	}

	frames, err := r.Sequence(face, clk, interval, flags.frames)
	if err != nil {
		return err
	}
	log.Debug("rendered sequence", "at", at, "frames", len(frames), "interval", interval)
	return render.EncodeGIF(w, frames, interval)
}

// openOutput resolves the output destination. Stdout is rejected when it
// is attached to a terminal.
func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		if f, ok := stdout.(*os.File); ok && isTerminal(f) {
			return nil, nil, errTerminalOutput
		}
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
