package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/mnistetl/pkg/idx"
)

type inspectReport struct {
	Path       string   `json:"path"`
	Kind       string   `json:"kind"`
	DimSizes   []uint32 `json:"dim_sizes"`
	Count      int      `json:"count"`
	RecordSize int      `json:"record_size"`
	Payload    int      `json:"payload_bytes"`
}

func inspectCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode and print an IDX file header",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the report as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit("usage: mnistetl inspect [--json] <file>", 2)
			}
			path := cmd.Args().First()

			f, err := idx.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			report := inspectReport{
				Path:       path,
				Kind:       f.Header.Kind.String(),
				DimSizes:   f.Header.DimSizes,
				Count:      f.Header.Count(),
				RecordSize: f.Header.RecordSize(),
				Payload:    len(f.Data) - f.Header.Size(),
			}

			if asJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(b))
				return nil
			}

			fmt.Printf("File: %s\n", report.Path)
			fmt.Printf("kind=%s | dims=%s | instances=%d | record=%d bytes | payload=%d bytes\n",
				report.Kind, formatDims(report.DimSizes), report.Count, report.RecordSize, report.Payload)
			return nil
		},
	}
}

func formatDims(dims []uint32) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, "x") + "]"
}
