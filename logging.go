package main

import (
	"github.com/urfave/cli"

	"github.com/df07/go-stochastic-raytracer/pkg/log"
)

var logger = log.New("raytracer")

// verbosity maps the -v and -vv flags to a log level; -vv wins when both are set
func verbosity(v, vv bool) log.Level {
	switch {
	case vv:
		return log.Debug
	case v:
		return log.Info
	default:
		return log.Notice
	}
}

func setupLogging(ctx *cli.Context) {
	log.SetLevel(verbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
	logger.Debug("debug logging enabled")
}
