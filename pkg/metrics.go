package eqd

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eqlab/eqd/pkg/algebra"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	nextConnectionID prometheus.CounterFunc

	// Gauges
	openConnections prometheus.GaugeFunc
	openChannels    prometheus.GaugeFunc
	lemmaWatchers   prometheus.GaugeFunc
	axioms          prometheus.GaugeFunc
	lemmas          prometheus.GaugeFunc

	// Latency histograms
	statementLatency prometheus.Summary
	verifyLatency    prometheus.Summary
}

func newMetrics(db *Session) *metrics {
	m := &metrics{
		nextConnectionID: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "next_connection_id",
				Help: "number of connections to this server over its lifetime",
			},
			func() float64 {
				return float64(db.nextConnectionID)
			},
		),
		openConnections: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_connections",
				Help: "number of connections currently open",
			},
			func() float64 {
				return float64(len(db.connections))
			},
		),
		openChannels: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_channels",
				Help: "number of channels currently open across all connections",
			},
			func() float64 {
				// TODO: synchronize access to db.connections
				count := 0
				for _, conn := range db.connections {
					count += len(conn.channels)
				}
				return float64(count)
			},
		),
		lemmaWatchers: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "lemma_watchers",
				Help: "number of channels watching for lemma admissions",
			},
			func() float64 {
				return float64(db.watchers.getNumWatchers())
			},
		),
		axioms: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "axioms",
				Help: "number of axioms in the registry",
			},
			func() float64 {
				return float64(len(db.registry.EntriesOfKind(algebra.KindAxiom)))
			},
		),
		lemmas: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "lemmas",
				Help: "number of verified lemmas in the registry",
			},
			func() float64 {
				return float64(len(db.registry.EntriesOfKind(algebra.KindLemma)))
			},
		),
		statementLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "statement_latency_ns",
				Help: "latency to handle one statement, parse through response",
			},
		),
		verifyLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "verify_latency_ns",
				Help: "latency to verify a derivation chain and admit its lemma",
			},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(prometheus.NewProcessCollector(os.Getpid(), ""))
	reg.MustRegister(prometheus.NewGoCollector())

	reg.MustRegister(m.nextConnectionID)
	reg.MustRegister(m.openConnections)
	reg.MustRegister(m.openChannels)
	reg.MustRegister(m.lemmaWatchers)
	reg.MustRegister(m.axioms)
	reg.MustRegister(m.lemmas)
	reg.MustRegister(m.statementLatency)
	reg.MustRegister(m.verifyLatency)
	return m
}
