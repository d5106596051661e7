package cmd

import (
	"github.com/achilleasa/aobench/scene"
	"github.com/urfave/cli"
)

// Display the benchmark scene primitives.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("scene information:\n%s", scene.Default().Stats())
	return nil
}
