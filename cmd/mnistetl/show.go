package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/urfave/cli/v3"
)

// intensity ramp from blank to solid, indexed by pixel value.
const shades = " .:-=+*#%@"

func showCmd() *cli.Command {
	var index int64

	return &cli.Command{
		Name:  "show",
		Usage: "Render one instance as ASCII art with its label",
		Flags: append(append(dataFlags(), loggingFlags()...),
			&cli.Int64Flag{
				Name:        "index",
				Aliases:     []string{"i"},
				Usage:       "instance index to render",
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
			img, label, err := h.InstanceAt(int(index))
			if err != nil {
				return err
			}

			fmt.Printf("Instance %d, label %d:\n", index, label)
			fmt.Print(renderASCII(img))
			return nil
		},
	}
}

// renderASCII draws a flattened image as a square character grid. A
// record whose length is not a perfect square is drawn as one row.
func renderASCII(img []uint8) string {
	cols := int(math.Sqrt(float64(len(img))))
	if cols*cols != len(img) {
		cols = len(img)
	}

	var b strings.Builder
	for i, p := range img {
		b.WriteByte(shades[int(p)*(len(shades)-1)/255])
		if (i+1)%cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
