package cmd

import "github.com/urfave/cli"

// Flags shared by all commands that render frames.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 256,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 256,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "subsamples, s",
			Value: 2,
			Usage: "jittered primary rays per pixel axis",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: 0,
			Usage: "number of cpu tracers (0 = one per cpu core)",
		},
		cli.StringFlag{
			Name:  "scheduler",
			Value: "naive",
			Usage: "block scheduler (naive, perfect); only the naive scheduler gives reproducible frames",
		},
	}
}

// Flags for the render frame command.
func FrameFlags() []cli.Flag {
	return append(RenderFlags(),
		cli.StringFlag{
			Name:  "out, o",
			Value: "ao.png",
			Usage: "image filename or s3://bucket/key for the rendered frame",
		},
		cli.IntFlag{
			Name:  "out-width",
			Usage: "resample the output image to this width (0 = keep aspect ratio)",
		},
		cli.IntFlag{
			Name:  "out-height",
			Usage: "resample the output image to this height (0 = keep aspect ratio)",
		},
		cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "file with S3 settings",
		},
	)
}

// Flags for the bench command.
func BenchFlags() []cli.Flag {
	return append(RenderFlags(),
		cli.IntFlag{
			Name:  "frames, n",
			Value: 5,
			Usage: "number of frames to render",
		},
	)
}
