// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package abicall

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "abicall"

// Metrics counts invocations by outcome and times each pipeline stage.
type Metrics struct {
	invocations   *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewMetrics creates the executor metrics and registers them on reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "invocations_total",
				Help:      "Method invocations by outcome",
			},
			[]string{"outcome"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricNamespace,
				Name:      "stage_duration_seconds",
				Help:      "Time spent in each invocation stage",
				Buckets:   []float64{.005, .025, .1, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"stage"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.invocations, m.stageDuration)
	}
	return m
}

func (m *Metrics) observeStage(stage Stage, since time.Time) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage.String()).Observe(time.Since(since).Seconds())
}

func (m *Metrics) outcome(label string) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(label).Inc()
}
