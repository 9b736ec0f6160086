package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/mnistetl/internal/dataset"
	"github.com/samcharles93/mnistetl/internal/logger"
)

var (
	dataDir    string
	imagesPath string
	labelsPath string
	useTestSet bool
	logLevel   string
	logFormat  string
)

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "directory containing the MNIST files",
			Value:       "data",
			Destination: &dataDir,
		},
		&cli.BoolFlag{
			Name:        "test",
			Usage:       "use the t10k test pair instead of the training pair",
			Destination: &useTestSet,
		},
		&cli.StringFlag{
			Name:        "images",
			Usage:       "explicit path to the images file (overrides --data-dir)",
			Destination: &imagesPath,
		},
		&cli.StringFlag{
			Name:        "labels",
			Usage:       "explicit path to the labels file (overrides --data-dir)",
			Destination: &labelsPath,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	default:
		return logger.Pretty(os.Stderr, level)
	}
}

// resolvePaths picks the images/labels file pair from the explicit flags
// or the canonical names under --data-dir.
func resolvePaths() (string, string, error) {
	if imagesPath != "" && labelsPath != "" {
		return imagesPath, labelsPath, nil
	}
	if useTestSet {
		return dataset.TestPair(dataDir)
	}
	return dataset.TrainPair(dataDir)
}

func loadHandle(log logger.Logger) (*dataset.Handle[[]uint8], error) {
	images, labels, err := resolvePaths()
	if err != nil {
		return nil, err
	}
	return dataset.Load(images, labels, dataset.SliceRecord, dataset.WithLogger(log))
}
