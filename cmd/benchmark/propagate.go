package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/react"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var sizes = []int{1, 10, 100, 1_000}

func addOne(v int) int {
	return v + 1
}

func pass(int) {}

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))
	limit := int(cmd.Uint(maxKey))

	opts, report, err := metricsOptions(cmd)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle("react")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "cells", "avg", "min", "p75", "p99", "max"})

	for _, w := range sizes {
		if w > limit {
			break
		}
		for _, h := range sizes {
			if h > limit {
				break
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			r, src, err := buildChains(w, h, opts...)
			if err != nil {
				return fmt.Errorf("build %d * %d: %w", w, h, err)
			}

			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			for i := 0; i < iters; i++ {
				v, _ := r.Value(src)
				start := time.Now()
				r.SetValue(src, v+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					r.Computes(),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
			log.Printf("propagate: %d * %d done", w, h)
		}
	}

	tbl.Render()
	report()
	return nil
}

// buildChains hangs w independent chains of h compute cells off one input,
// with a listener on the tail of each chain.
func buildChains(w, h int, opts ...react.Option) (*react.Reactor[int], react.InputCellID, error) {
	r := react.New[int](opts...)
	src := r.CreateInput(1)
	for i := 0; i < w; i++ {
		var last react.CellID = src
		var tail react.ComputeCellID
		for j := 0; j < h; j++ {
			id, err := react.Compute1(r, last, addOne)
			if err != nil {
				return nil, 0, err
			}
			last, tail = id, id
		}
		r.AddCallback(tail, pass)
	}
	return r, src, nil
}
