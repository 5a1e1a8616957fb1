package main

import (
	"os"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	"github.com/wireweaver/shrinkwrap/shrinkwrap"
	"gopkg.in/urfave/cli.v1"
)

// verbosityToLevel mirrors the launcher's own 0..5 verbosity scale
// (fatal,error,warn,info,debug,trace) rather than logrus's native
// ordering, so --log.verbosity behaves the same across every wwctl
// subcommand.
func verbosityToLevel(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.FatalLevel
	case v == 1:
		return logrus.ErrorLevel
	case v == 2:
		return logrus.WarnLevel
	case v == 3:
		return logrus.InfoLevel
	case v == 4:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// setupLogging builds the logrus logger for a command invocation, wires it
// as the shrinkwrap package's trace destination, and attaches an optional
// Sentry hook when --sentry.dsn is set.
func setupLogging(ctx *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(verbosityToLevel(ctx.GlobalInt("log.verbosity")))
	logger.SetOutput(os.Stderr)
	if ctx.GlobalString("log.format") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !ctx.GlobalBool("log.color"),
			FullTimestamp: true,
		})
	}

	if dsn := ctx.GlobalString("sentry.dsn"); dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			logger.WithError(err).Warn("sentry hook disabled: could not initialize")
		} else {
			logger.AddHook(hook)
		}
	}

	shrinkwrap.SetTraceLogger(logger)
	return logger
}
