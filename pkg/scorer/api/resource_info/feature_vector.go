// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package resource_info

// Feature indices of the vector handed to a scoring policy. The ordering
// is a contract shared with every policy implementation; changing it
// requires bumping FeatureVectorVersion.
const (
	FeatureAllocatableCPU = iota
	FeatureAllocatableMemory
	FeatureRequestedCPU
	FeatureRequestedMemory
	FeatureCount
)

// FeatureVectorVersion identifies the current feature ordering contract.
const FeatureVectorVersion = 1

// FeatureVector holds, in base units (cores, bytes): allocatable cpu,
// allocatable memory, requested cpu, requested memory.
type FeatureVector [FeatureCount]float64

func NewFeatureVector(allocatableCPU, allocatableMemory, requestedCPU, requestedMemory float64) FeatureVector {
	var vec FeatureVector
	vec[FeatureAllocatableCPU] = allocatableCPU
	vec[FeatureAllocatableMemory] = allocatableMemory
	vec[FeatureRequestedCPU] = requestedCPU
	vec[FeatureRequestedMemory] = requestedMemory
	return vec
}

func (v FeatureVector) Get(index int) float64 {
	if index < 0 || index >= FeatureCount {
		return 0
	}
	return v[index]
}
