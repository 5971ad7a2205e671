package main

import (
	"log"

	"github.com/delaneyj/cellparty/pkg/metrics"
	"github.com/delaneyj/cellparty/react"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
)

// metricsOptions returns the reactor options for --metrics and a func that
// logs the collected totals.
func metricsOptions(cmd *cli.Command) ([]react.Option, func(), error) {
	if !cmd.Bool(metricsKey) {
		return nil, func() {}, nil
	}

	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	if err != nil {
		return nil, nil, err
	}
	return []react.Option{react.WithObserver(c)}, func() { logMetrics(reg) }, nil
}

func logMetrics(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Printf("gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				log.Printf("%s %s", mf.GetName(), humanize.Commaf(c.GetValue()))
			}
			if h := m.GetHistogram(); h != nil {
				log.Printf("%s count=%s sum=%.6fs", mf.GetName(), humanize.Comma(int64(h.GetSampleCount())), h.GetSampleSum())
			}
		}
	}
}
