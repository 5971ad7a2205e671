package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cellparty/react"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func layers(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting layers benchmark, please wait...")
	defer log.Print("Finished layers benchmark")

	scenarios, err := loadScenarios(cmd.String(scenariosKey))
	if err != nil {
		return err
	}
	repeats := int(cmd.Uint(repeatsKey))
	if repeats < 1 {
		repeats = 1
	}

	opts, report, err := metricsOptions(cmd)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "nSources", "read%",
		"nTimes", "test", "time", "updateRate", "checksum", "title",
	})

	for _, s := range scenarios {
		log.Printf("Running '%s' config", s.Name)
		counter := new(int64)
		g, err := buildLayers(s, counter, opts...)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}

		best := layerResult{duration: time.Hour}
		for i := 0; i < repeats; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Printf("Running '%s' config, iteration %d/%d %d%%", s.Name, i+1, repeats, (i+1)*100/repeats)
			*counter = 0
			start := time.Now()
			checksum := runLayers(g, s)
			duration := time.Since(start)

			if duration < best.duration {
				best = layerResult{duration: duration, checksum: checksum, count: *counter}
			}
		}

		updateRate := float64(best.count) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			"react",
			fmt.Sprintf("%dx%d", s.Width, s.Layers),
			fmt.Sprint(s.Sources),
			fmt.Sprint(s.ReadFraction),
			humanize.Comma(s.Iterations),
			s.Name,
			fmt.Sprint(best.duration),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", best.checksum),
			s.title(),
		})
	}
	table.Render()
	report()
	return nil
}

type layerResult struct {
	duration time.Duration
	checksum uint64
	count    int64
}

func (s scenario) title() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d %d sources", s.Width, s.Layers, s.Sources))
	if s.ReadFraction < 1 {
		sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*s.ReadFraction))
	}
	return sb.String()
}

type layerGraph struct {
	r       *react.Reactor[int]
	sources []react.InputCellID
	leaves  []react.ComputeCellID
}

// buildLayers creates s.Width inputs and s.Layers-1 rows of compute cells.
// Node i of a row sums nodes i..i+s.Sources-1 (wrapping) of the row above.
// counter is bumped on every compute call.
func buildLayers(s scenario, counter *int64, opts ...react.Option) (*layerGraph, error) {
	r := react.New[int](opts...)
	g := &layerGraph{r: r}

	prev := make([]react.CellID, s.Width)
	for i := range prev {
		id := r.CreateInput(i)
		g.sources = append(g.sources, id)
		prev[i] = id
	}

	for l := 1; l < s.Layers; l++ {
		row := make([]react.CellID, s.Width)
		leaves := make([]react.ComputeCellID, s.Width)
		for myDex := range row {
			deps := make([]react.CellID, 0, s.Sources)
			for sourceDex := 0; sourceDex < s.Sources; sourceDex++ {
				deps = append(deps, prev[(myDex+sourceDex)%len(prev)])
			}
			id, err := r.CreateCompute(deps, func(values []int) int {
				*counter++
				sum := 0
				for _, v := range values {
					sum += v
				}
				return sum
			})
			if err != nil {
				return nil, err
			}
			row[myDex], leaves[myDex] = id, id
		}
		prev = row
		g.leaves = leaves
	}
	return g, nil
}

// runLayers writes the sources round-robin and reads a fixed random subset of
// the leaves after every write. It returns an xxhash of the final leaf values.
func runLayers(g *layerGraph, s scenario) uint64 {
	random := rand.New(rand.NewSource(0))
	skipCount := int(math.Round(float64(len(g.leaves)) * (1 - s.ReadFraction)))
	readLeaves := removeElems(g.leaves, skipCount, random)

	for i := 0; i < int(s.Iterations); i++ {
		sourceDex := i % len(g.sources)
		g.r.SetValue(g.sources[sourceDex], i+sourceDex)

		for _, leaf := range readLeaves {
			g.r.Value(leaf)
		}
	}

	digest := xxhash.New()
	buf := make([]byte, 0, 8)
	for _, leaf := range readLeaves {
		v, _ := g.r.Value(leaf)
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(v))
		digest.Write(buf)
	}
	return digest.Sum64()
}

func removeElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
