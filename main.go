package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/aobench/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "aobench"
	app.Usage = "render an ambient occlusion benchmark scene"
	app.Version = "0.0.1"
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
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame of the benchmark scene and write it as a grayscale
image. The output format is selected from the file extension. Destinations
of the form s3://bucket/key are uploaded to S3 using the AOBENCH_S3_*
environment variables, optionally loaded from an env file.`,
					Flags:  cmd.FrameFlags(),
					Action: cmd.RenderFrame,
				},
			},
		},
		{
			Name:   "scene",
			Usage:  "display the benchmark scene primitives",
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:   "list-tracers",
			Usage:  "list the cpu tracers and their default row assignment",
			Flags:  cmd.RenderFlags(),
			Action: cmd.ListTracers,
		},
		{
			Name:        "bench",
			Usage:       "benchmark frame rendering",
			Description: `Render a sequence of frames and display per-frame timings and block assignments.`,
			Flags:       cmd.BenchFlags(),
			Action:      cmd.Benchmark,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
