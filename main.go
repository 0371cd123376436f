package main

import (
	"os"

	"github.com/df07/go-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render sphere scenes with a recursive ray tracer"
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
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene (see list-scenes) or a JSON scene file. Camera flags
left unset keep the scene's own settings.

The image is written as plain-text PPM (P3) unless the output file ends in
.png or --format is given. Use "-o -" to stream the image to stdout.`,
			ArgsUsage: "[scene name | scene.json]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.StringFlag{
					Name:  "aspect",
					Usage: "aspect ratio, e.g. 16:9 or 1.7778",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of bounces",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed; equal seeds produce identical images",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "rows rendered in parallel (0 = number of CPUs)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.ppm",
					Usage: "image filename, - for stdout",
				},
				cli.StringFlag{
					Name:  "format",
					Usage: "image format: ppm or png (default: from the file extension)",
				},
				cli.BoolFlag{
					Name:  "no-progress",
					Usage: "do not draw a progress bar",
				},
			},
			Action: cmd.RenderImage,
		},
		{
			Name:  "list-scenes",
			Usage: "list available scenes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for JSON scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
