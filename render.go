package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-stochastic-raytracer/pkg/output"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// Render a scene to an image file.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	sc, err := scene.Create(sceneName, ctx.Int("width"), ctx.Int("height"), ctx.Int64("seed"))
	if err != nil {
		return err
	}

	config := sc.SamplingConfig
	config.SamplesPerPixel = ctx.Int("spp")
	config.MaxDepth = ctx.Int("depth")

	if err := sc.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", sceneName, err)
	}

	opts := renderer.Options{
		NumWorkers: ctx.Int("workers"),
		TileSize:   ctx.Int("tile-size"),
		Seed:       ctx.Int64("seed"),
		Logger:     logger,
		Progress:   progressLogger(10),
	}

	rt, err := renderer.NewRaytracer(sc.World, sc.Camera(), config, opts)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (%d spheres)", sceneName, sc.World.Len())
	pixels, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	filename := ctx.String("out")
	if filename == "" {
		filename = defaultOutputPath(sceneName, time.Now())
	}
	if err := output.Save(filename, output.ToRGBA(pixels, config.Width, config.Height)); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", filename)
	return nil
}

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()
	return nil
}

func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// progressLogger logs each time another 1/steps of the image completes
func progressLogger(steps int) renderer.ProgressFunc {
	reported := 0
	return func(completed, total int) {
		step := completed * steps / total
		if step > reported {
			reported = step
			logger.Infof("progress: %3d%% (%d/%d pixels)", completed*100/total, completed, total)
		}
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"Pixels", fmt.Sprintf("%d", stats.TotalPixels)},
		{"Samples", fmt.Sprintf("%d", stats.TotalSamples)},
		{"Samples per pixel", fmt.Sprintf("%.1f", stats.AverageSamples())},
		{"Average bounces", fmt.Sprintf("%.2f", stats.AverageBounces())},
		{"Escaped paths", percentOf(stats.Escaped, stats.TotalSamples)},
		{"Absorbed paths", percentOf(stats.Absorbed, stats.TotalSamples)},
		{"Exhausted paths", percentOf(stats.Exhausted, stats.TotalSamples)},
		{"Tiles", fmt.Sprintf("%d", stats.Tiles)},
		{"Workers", fmt.Sprintf("%d", stats.Workers)},
	})
	table.SetFooter([]string{"Render time", stats.Duration.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

func percentOf(count, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%02.1f %%)", count, 100*float64(count)/float64(total))
}
