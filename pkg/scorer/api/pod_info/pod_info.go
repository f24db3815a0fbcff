// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package pod_info

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"

	"github.com/clusterml/node-scorer/pkg/scorer/api/common_info"
)

// Pod mirrors the subset of the Kubernetes pod wire format the scorer
// reads. Quantities stay strings so that parsing happens in exactly one
// place, with cpu and memory rules dispatched by field.
type Pod struct {
	Metadata common_info.ObjectMeta `json:"metadata"`
	Spec     PodSpec                `json:"spec"`
}

type PodSpec struct {
	SchedulerName string      `json:"schedulerName,omitempty"`
	Containers    []Container `json:"containers,omitempty"`
}

type Container struct {
	Name      string               `json:"name,omitempty"`
	Resources ResourceRequirements `json:"resources"`
}

type ResourceRequirements struct {
	Requests common_info.ResourceList `json:"requests"`
}

// RequestedResources sums cpu and memory requests across all containers.
// A container without a requests block, or with a missing resource key,
// contributes zero.
func (p *Pod) RequestedResources() (cpuCores, memoryBytes float64, err error) {
	for _, container := range p.Spec.Containers {
		cpu, cerr := container.Resources.Requests.CPUCores()
		if cerr != nil {
			return 0, 0, errors.Wrapf(cerr, "pod %q container %q cpu request",
				p.Metadata.Name, container.Name)
		}
		memory, merr := container.Resources.Requests.MemoryBytes()
		if merr != nil {
			return 0, 0, errors.Wrapf(merr, "pod %q container %q memory request",
				p.Metadata.Name, container.Name)
		}
		cpuCores += cpu
		memoryBytes += memory
	}
	return cpuCores, memoryBytes, nil
}

// FromV1Pod converts a Kubernetes pod object into the scorer wire format,
// keeping only the fields the feature builder reads.
func FromV1Pod(pod *corev1.Pod) *Pod {
	result := &Pod{
		Metadata: common_info.ObjectMeta{Name: pod.Name, Labels: pod.Labels},
		Spec:     PodSpec{SchedulerName: pod.Spec.SchedulerName},
	}
	for _, container := range pod.Spec.Containers {
		requests := common_info.ResourceList{}
		if quantity, found := container.Resources.Requests[corev1.ResourceCPU]; found {
			requests.CPU = quantity.String()
		}
		if quantity, found := container.Resources.Requests[corev1.ResourceMemory]; found {
			requests.Memory = quantity.String()
		}
		result.Spec.Containers = append(result.Spec.Containers, Container{
			Name:      container.Name,
			Resources: ResourceRequirements{Requests: requests},
		})
	}
	return result
}
