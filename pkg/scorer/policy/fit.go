// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/pkg/errors"

	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
)

const FitPolicyName = "fit"

// fitPolicy scores a node by its normalized post-placement headroom,
// weighted between cpu and memory. A dimension with no allocatable
// capacity contributes zero headroom, so empty nodes rank last.
type fitPolicy struct {
	cpuWeight    float64
	memoryWeight float64
}

func newFitPolicy(params Params) (Policy, error) {
	if params.CPUWeight < 0 || params.MemoryWeight < 0 {
		return nil, errors.New("fit policy weights must be non-negative")
	}
	total := params.CPUWeight + params.MemoryWeight
	if total == 0 {
		return nil, errors.New("fit policy needs at least one positive weight")
	}
	return &fitPolicy{
		cpuWeight:    params.CPUWeight / total,
		memoryWeight: params.MemoryWeight / total,
	}, nil
}

func (f *fitPolicy) Name() string {
	return FitPolicyName
}

func (f *fitPolicy) Score(features resource_info.FeatureVector) (float64, error) {
	cpuHeadroom := headroom(
		features[resource_info.FeatureAllocatableCPU],
		features[resource_info.FeatureRequestedCPU])
	memoryHeadroom := headroom(
		features[resource_info.FeatureAllocatableMemory],
		features[resource_info.FeatureRequestedMemory])
	return MaxScore * (f.cpuWeight*cpuHeadroom + f.memoryWeight*memoryHeadroom), nil
}

func headroom(allocatable, requested float64) float64 {
	if allocatable <= 0 {
		return 0
	}
	remaining := (allocatable - requested) / allocatable
	if remaining < 0 {
		return 0
	}
	if remaining > 1 {
		return 1
	}
	return remaining
}
