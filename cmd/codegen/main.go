package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	countKey = "count"
	outKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed ComputeN helpers for the react package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  countKey,
				Usage: "Highest arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "react/compute_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for react started !")
	defer func() {
		log.Printf("Codegen for react finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(countKey))
	if count < 1 {
		return fmt.Errorf("--%s must be at least 1", countKey)
	}
	out := cmd.String(outKey)
	log.Printf("Arity: 1..%d, output: %s", count, out)

	contents, err := format.Source([]byte(templates.ComputeGen(count)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
