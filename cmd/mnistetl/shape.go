package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func shapeCmd() *cli.Command {
	var index int64

	return &cli.Command{
		Name:  "shape",
		Usage: "Load an images/labels pair and print the dataset shape",
		Flags: append(append(dataFlags(), loggingFlags()...),
			&cli.Int64Flag{
				Name:        "index",
				Usage:       "also fetch the instance at this index",
				Value:       -1,
				Destination: &index,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyConfig(cmd, LoadConfig(), nil)
			log := newLogger()

			h, err := loadHandle(log)
			if err != nil {
				log.Error("dataset load failed", "error", err)
				return err
			}
			h.PrintShape(os.Stdout)

			if index >= 0 {
				_, label, err := h.InstanceAt(int(index))
				if err != nil {
					return err
				}
				fmt.Printf("Instance %d label: %d\n", index, label)
			}
			return nil
		},
	}
}
