// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package common_info

import (
	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
)

// ObjectMeta is the subset of Kubernetes object metadata the scorer reads.
type ObjectMeta struct {
	Name   string            `json:"name,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

// ResourceList carries cpu and memory quantity strings in their wire form.
// An absent field parses as zero.
type ResourceList struct {
	CPU    string `json:"cpu,omitempty"`
	Memory string `json:"memory,omitempty"`
}

const zeroQuantity = "0"

func (r ResourceList) CPUCores() (float64, error) {
	return resource_info.ParseCPU(valueOrZero(r.CPU))
}

func (r ResourceList) MemoryBytes() (float64, error) {
	return resource_info.ParseMemory(valueOrZero(r.Memory))
}

func valueOrZero(value string) string {
	if value == "" {
		return zeroQuantity
	}
	return value
}
