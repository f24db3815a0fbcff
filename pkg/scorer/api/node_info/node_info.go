// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package node_info

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"

	"github.com/clusterml/node-scorer/pkg/scorer/api/common_info"
)

// Node mirrors the subset of the Kubernetes node wire format the scorer
// reads.
type Node struct {
	Metadata common_info.ObjectMeta `json:"metadata"`
	Status   NodeStatus             `json:"status"`
}

type NodeStatus struct {
	Allocatable common_info.ResourceList `json:"allocatable"`
}

// Name returns the node identifier. A node without a name is identified by
// the empty string rather than rejected.
func (n *Node) Name() string {
	return n.Metadata.Name
}

// AllocatableResources reads the node's allocatable cpu and memory. A
// missing allocatable block or key counts as zero.
func (n *Node) AllocatableResources() (cpuCores, memoryBytes float64, err error) {
	cpuCores, err = n.Status.Allocatable.CPUCores()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "node %q allocatable cpu", n.Metadata.Name)
	}
	memoryBytes, err = n.Status.Allocatable.MemoryBytes()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "node %q allocatable memory", n.Metadata.Name)
	}
	return cpuCores, memoryBytes, nil
}

// FromV1Node converts a Kubernetes node object into the scorer wire format.
func FromV1Node(node *corev1.Node) *Node {
	result := &Node{
		Metadata: common_info.ObjectMeta{Name: node.Name, Labels: node.Labels},
	}
	if quantity, found := node.Status.Allocatable[corev1.ResourceCPU]; found {
		result.Status.Allocatable.CPU = quantity.String()
	}
	if quantity, found := node.Status.Allocatable[corev1.ResourceMemory]; found {
		result.Status.Allocatable.Memory = quantity.String()
	}
	return result
}
