// sphere-tracer renders signed-distance-field scenes by sphere marching.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/publish"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/df07/go-sphere-tracer/web/server"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// glogLogger implements core.Logger on top of glog
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

var cmdRoot = &cobra.Command{
	Use:   "sphere-tracer",
	Short: "Sphere-tracing renderer for signed distance field scenes",
}

var (
	envFile string
)

func init() {
	cmdRoot.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file with S3_* settings for publishing")
}

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to an image file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		path, err := runRender(ctx, renderOpts)
		if err != nil {
			return err
		}
		fmt.Printf("Render saved as %s\n", path)
		return nil
	},
}

// renderOptions holds the render command's flags
type renderOptions struct {
	Scene     string
	Width     int
	Height    int
	MaxSteps  int
	Workers   int
	Format    string
	Output    string
	OutputDir string
	Thumbnail int
	Publish   bool
}

var renderOpts renderOptions

func init() {
	flags := cmdRender.Flags()
	flags.StringVar(&renderOpts.Scene, "scene", "sphere", "Scene name (see 'scenes')")
	flags.IntVar(&renderOpts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&renderOpts.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flags.IntVar(&renderOpts.MaxSteps, "max-steps", 0, "March step budget per pixel (0 = scene default)")
	flags.IntVar(&renderOpts.Workers, "workers", 0, "Parallel row workers (0 = CPU count, 1 = sequential)")
	flags.StringVar(&renderOpts.Format, "format", "ppm", "Output format: ppm or png")
	flags.StringVar(&renderOpts.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flags.StringVar(&renderOpts.OutputDir, "output-dir", "output", "Directory for generated file names")
	flags.IntVar(&renderOpts.Thumbnail, "thumbnail", 0, "Also write a PNG thumbnail of this width")
	flags.BoolVar(&renderOpts.Publish, "publish", false, "Upload the render to the configured S3 bucket")
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List built-in scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", info.ID, info.Description)
		}
		return nil
	},
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		var publisher server.Publisher
		if cfg := publish.ConfigFromEnv(envFile); cfg.Enabled() {
			p, err := publish.NewS3Publisher(cfg, glogLogger{})
			if err != nil {
				return fmt.Errorf("while creating publisher: %w", err)
			}
			publisher = p
		}

		return server.NewServer(servePort, publisher).Start(ctx)
	},
}

var servePort int

func init() {
	cmdServe.Flags().IntVar(&servePort, "port", 8080, "Port to serve on")
}

// createScene creates a scene by name with optional size overrides
func createScene(name string, width, height int) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.Create(name, geometry.CameraConfig{Rows: height, Cols: width})
}

// outputPath returns the file a render is written to
func outputPath(opts renderOptions, now time.Time) string {
	if opts.Output != "" {
		return opts.Output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(opts.OutputDir, opts.Scene, fmt.Sprintf("render_%s.%s", timestamp, opts.Format))
}

// runRender renders one scene to disk and returns the output path
func runRender(ctx context.Context, opts renderOptions) (string, error) {
	selectedScene, err := createScene(opts.Scene, opts.Width, opts.Height)
	if err != nil {
		return "", fmt.Errorf("while creating scene: %w", err)
	}

	config := selectedScene.TraceConfig
	config.Workers = opts.Workers
	if opts.MaxSteps > 0 {
		config.MaxSteps = opts.MaxSteps
	}

	var logger core.Logger = glogLogger{}
	tracer := renderer.NewRenderer(selectedScene, selectedScene.GetCamera(), config, logger)

	fb, stats, err := tracer.Render(ctx)
	if err != nil {
		return "", err
	}
	glog.V(1).Infof("Render stats: %+v", stats)

	data, contentType, err := fb.Encode(opts.Format, opts.Scene)
	if err != nil {
		return "", fmt.Errorf("while encoding render: %w", err)
	}

	path := outputPath(opts, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("while creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("while writing %s: %w", path, err)
	}

	if opts.Thumbnail > 0 {
		thumbPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.png"
		if err := writeThumbnail(fb, thumbPath, opts.Thumbnail); err != nil {
			return "", err
		}
		glog.Infof("Thumbnail saved as %s", thumbPath)
	}

	if opts.Publish {
		publisher, err := publish.NewS3Publisher(publish.ConfigFromEnv(envFile), logger)
		if err != nil {
			return "", fmt.Errorf("while creating publisher: %w", err)
		}
		if _, err := publisher.Publish(ctx, filepath.Base(path), data, contentType); err != nil {
			return "", fmt.Errorf("while publishing render: %w", err)
		}
	}

	return path, nil
}

func writeThumbnail(fb *imageio.Framebuffer, path string, width int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating %s: %w", path, err)
	}
	defer file.Close()

	if err := fb.WriteThumbnail(file, width); err != nil {
		return fmt.Errorf("while writing thumbnail: %w", err)
	}
	return file.Close()
}

func main() {
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	// glog checks that the standard flag set was parsed; cobra parses it instead
	_ = flag.CommandLine.Parse(nil)
	glog.CopyStandardLogTo("INFO")

	cmdRoot.AddCommand(cmdRender, cmdScenes, cmdServe)

	if err := cmdRoot.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
