package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer/pkg/output"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var errInvalidAspect = errors.New("aspect ratio must look like 16:9 or 1.7778")

// renderJob collects everything needed to render one image
type renderJob struct {
	Scene    string
	Camera   renderer.CameraConfig // Non-zero fields override the scene's camera
	DepthSet bool                  // Camera.MaxDepth applies even when zero
	Options  renderer.RenderOptions
	Out      string
	Format   output.Format
	Progress io.Writer // nil disables the progress bar
}

// Render a scene to an image file.
func RenderImage(ctx *cli.Context) error {
	setupLogging(ctx)

	job, err := renderJobFromFlags(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	stats, err := renderScene(context.Background(), job)
	if err != nil {
		logger.Error(err)
		return err
	}

	displayRenderStats(stats)
	return nil
}

func renderJobFromFlags(ctx *cli.Context) (renderJob, error) {
	aspect, err := parseAspectRatio(ctx.String("aspect"))
	if err != nil {
		return renderJob{}, err
	}

	job := renderJob{
		Scene: "default",
		Camera: renderer.CameraConfig{
			AspectRatio:     aspect,
			ImageWidth:      float64(ctx.Int("width")),
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
		},
		DepthSet: ctx.IsSet("depth"),
		Options: renderer.RenderOptions{
			Workers: ctx.Int("workers"),
			Seed:    ctx.Int64("seed"),
		},
		Out: ctx.String("out"),
	}
	if ctx.NArg() > 0 {
		job.Scene = ctx.Args().First()
	}

	if name := ctx.String("format"); name != "" {
		if job.Format, err = output.ParseFormat(name); err != nil {
			return renderJob{}, err
		}
	} else {
		job.Format = output.FormatFromPath(job.Out)
	}

	if !ctx.Bool("no-progress") {
		job.Progress = os.Stderr
	}
	return job, nil
}

// renderScene loads the scene, renders it and writes the image
func renderScene(ctx context.Context, job renderJob) (renderer.RenderStats, error) {
	sc, err := scene.Load(job.Scene, job.Camera)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	if job.DepthSet {
		sc.CameraConfig.MaxDepth = job.Camera.MaxDepth
	}

	camera, err := sc.NewCamera()
	if err != nil {
		return renderer.RenderStats{}, err
	}

	writer, err := output.Create(job.Out, job.Format)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	var progress renderer.Progress = renderer.NopProgress{}
	if job.Progress != nil {
		progress = renderer.NewBarProgress(job.Progress)
	}

	logger.Noticef(`rendering scene "%s" to %s`, sc.Name, job.Out)
	rt := renderer.NewRaytracer(camera, sc.World, job.Options)
	stats, err := rt.Render(ctx, writer, progress)
	if err != nil {
		_ = writer.Close()
		return stats, err
	}

	if err := writer.Close(); err != nil {
		return stats, fmt.Errorf("write %s: %w", job.Out, err)
	}
	return stats, nil
}

// parseAspectRatio accepts "W:H" or a plain ratio. An empty value means
// the scene's own aspect ratio.
func parseAspectRatio(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	var ratio float64
	if w, h, found := strings.Cut(value, ":"); found {
		width, errW := strconv.ParseFloat(strings.TrimSpace(w), 64)
		height, errH := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if errW != nil || errH != nil || height == 0 {
			return 0, fmt.Errorf("%w: got %q", errInvalidAspect, value)
		}
		ratio = width / height
	} else {
		var err error
		if ratio, err = strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return 0, fmt.Errorf("%w: got %q", errInvalidAspect, value)
		}
	}

	if !(ratio > 0) {
		return 0, fmt.Errorf("%w: got %q", errInvalidAspect, value)
	}
	return ratio, nil
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max depth", "Workers", "Samples", "Mean variance", "Samples/sec"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.6f", stats.MeanVariance),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
}
