package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

func newApp() *cli.App {
	defaults := renderer.DefaultSamplingConfig()
	options := renderer.DefaultOptions()

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere scenes with a stochastic path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Trace every pixel of the chosen scene with the given number of jittered samples
and write the gamma-corrected result as PNG, BMP or TIFF (picked by the output
file extension). The same seed always produces the same image.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "cover",
					Usage:  "scene to render (see the scenes command)",
					EnvVar: "RAYTRACER_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  defaults.Width,
					Usage:  "image width in pixels",
					EnvVar: "RAYTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  defaults.Height,
					Usage:  "image height in pixels",
					EnvVar: "RAYTRACER_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  defaults.SamplesPerPixel,
					Usage:  "samples per pixel",
					EnvVar: "RAYTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Value:  defaults.MaxDepth,
					Usage:  "maximum number of bounces per path",
					EnvVar: "RAYTRACER_DEPTH",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  options.Seed,
					Usage:  "seed for scene generation and sampling",
					EnvVar: "RAYTRACER_SEED",
				},
				cli.IntFlag{
					Name:   "workers, w",
					Value:  options.NumWorkers,
					Usage:  "number of render goroutines",
					EnvVar: "RAYTRACER_WORKERS",
				},
				cli.IntFlag{
					Name:   "tile-size",
					Value:  options.TileSize,
					Usage:  "edge length of a render tile in pixels",
					EnvVar: "RAYTRACER_TILE_SIZE",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
