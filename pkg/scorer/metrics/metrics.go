// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "node_scorer"

var (
	ScoreRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_requests_total",
			Help:      "Number of scoring requests served, by outcome.",
		}, []string{"status"})

	NodesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_scored_total",
			Help:      "Number of candidate nodes scored.",
		})

	MalformedQuantities = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_quantities_total",
			Help:      "Number of candidates rejected for unparsable resource quantities.",
		})

	ScoreLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_request_duration_seconds",
			Help:      "Latency of scoring requests.",
			Buckets:   prometheus.DefBuckets,
		})
)
