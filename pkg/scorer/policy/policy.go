// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"sort"

	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
)

// MaxScore is the nominal upper bound of the scoring range.
const MaxScore = 100.0

// Policy maps a feature vector to a placement score, nominally in
// [0, MaxScore]. Implementations must be safe for concurrent use and must
// not retain state between calls.
type Policy interface {
	Name() string
	Score(features resource_info.FeatureVector) (float64, error)
}

// ScoringFailureError marks a failure inside the scoring policy itself, as
// opposed to a malformed input quantity.
type ScoringFailureError struct {
	Policy string
	Node   string
	Err    error
}

func (e *ScoringFailureError) Error() string {
	return fmt.Sprintf("policy %q failed scoring node %q: %v", e.Policy, e.Node, e.Err)
}

func (e *ScoringFailureError) Unwrap() error { return e.Err }

func NewScoringFailure(policyName, nodeName string, err error) *ScoringFailureError {
	return &ScoringFailureError{Policy: policyName, Node: nodeName, Err: err}
}

// Params carries the flag-level configuration shared by all policy
// factories. Each factory reads only the fields it cares about.
type Params struct {
	CPUWeight     float64
	MemoryWeight  float64
	ConstantScore float64
}

type Factory func(params Params) (Policy, error)

var registry = map[string]Factory{
	FitPolicyName:      newFitPolicy,
	ConstantPolicyName: newConstantPolicy,
}

// New builds the policy registered under name.
func New(name string, params Params) (Policy, error) {
	factory, found := registry[name]
	if !found {
		return nil, fmt.Errorf("unknown scoring policy %q (available: %v)", name, Names())
	}
	return factory(params)
}

// Names lists the registered policy names in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
