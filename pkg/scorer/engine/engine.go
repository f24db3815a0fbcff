// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/pkg/scorer/api/node_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/pod_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
	"github.com/clusterml/node-scorer/pkg/scorer/metrics"
	"github.com/clusterml/node-scorer/pkg/scorer/policy"
)

// BuildFeatures assembles the fixed-order feature vector for a single
// pod/node pairing. Pure and deterministic; propagates quantity parse
// failures unswallowed.
func BuildFeatures(pod *pod_info.Pod, node *node_info.Node) (resource_info.FeatureVector, error) {
	var features resource_info.FeatureVector

	allocatableCPU, allocatableMemory, err := node.AllocatableResources()
	if err != nil {
		return features, err
	}
	requestedCPU, requestedMemory, err := pod.RequestedResources()
	if err != nil {
		return features, err
	}

	return resource_info.NewFeatureVector(
		allocatableCPU, allocatableMemory, requestedCPU, requestedMemory), nil
}

// Engine evaluates a scoring policy over candidate nodes. It holds no
// per-request state; every ScoreNodes call is independent.
type Engine struct {
	policy policy.Policy
	logger *zap.Logger
}

func New(scoringPolicy policy.Policy, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{policy: scoringPolicy, logger: logger}
}

// PolicyName reports which scoring policy the engine evaluates.
func (e *Engine) PolicyName() string {
	return e.policy.Name()
}

// ScoreNodes scores every candidate node for the given pod. The result map
// holds one entry per distinct candidate identifier; a candidate without a
// name is keyed by the empty string. An empty candidate list yields an
// empty map.
//
// The batch is strict: any malformed quantity fails the whole request, with
// failures collected across all candidates so the caller sees every bad one
// at once. A policy failure also fails the request, surfaced as a
// ScoringFailureError to keep the failing layer visible.
func (e *Engine) ScoreNodes(pod *pod_info.Pod, nodes []*node_info.Node) (map[string]int, error) {
	scores := make(map[string]int, len(nodes))

	var parseErrs error
	unnamed := 0
	for _, node := range nodes {
		name := node.Name()
		if name == "" {
			unnamed++
		}

		features, err := BuildFeatures(pod, node)
		if err != nil {
			metrics.MalformedQuantities.Inc()
			parseErrs = multierr.Append(parseErrs, err)
			continue
		}

		value, err := e.policy.Score(features)
		if err != nil {
			return nil, policy.NewScoringFailure(e.policy.Name(), name, err)
		}

		// Truncation toward zero is the score conversion contract.
		scores[name] = int(value)
	}
	if parseErrs != nil {
		return nil, parseErrs
	}

	if unnamed > 1 {
		// Unnamed candidates collapse onto the "" key and the last score
		// wins. Accepted rather than rejected, but worth surfacing.
		e.logger.Warn("multiple candidate nodes without a name collided on the empty identifier",
			zap.Int("unnamed", unnamed))
	}
	metrics.NodesScored.Add(float64(len(nodes)))
	return scores, nil
}
