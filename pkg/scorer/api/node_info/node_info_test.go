// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package node_info

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/clusterml/node-scorer/pkg/scorer/api/common_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
)

func TestAllocatableResources(t *testing.T) {
	tests := []struct {
		name           string
		allocatable    common_info.ResourceList
		expectedCPU    float64
		expectedMemory float64
	}{
		{
			name:           "cpu and memory",
			allocatable:    common_info.ResourceList{CPU: "2", Memory: "1Gi"},
			expectedCPU:    2,
			expectedMemory: 1 << 30,
		},
		{
			name:           "millicore cpu",
			allocatable:    common_info.ResourceList{CPU: "1500m", Memory: "1024"},
			expectedCPU:    1.5,
			expectedMemory: 1024,
		},
		{
			name:           "missing allocatable counts as zero",
			allocatable:    common_info.ResourceList{},
			expectedCPU:    0,
			expectedMemory: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &Node{Status: NodeStatus{Allocatable: tt.allocatable}}
			cpu, memory, err := node.AllocatableResources()
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedCPU, cpu, 1e-9)
			assert.InDelta(t, tt.expectedMemory, memory, 1e-6)
		})
	}
}

func TestAllocatableResourcesMalformed(t *testing.T) {
	node := &Node{
		Metadata: common_info.ObjectMeta{Name: "broken-node"},
		Status:   NodeStatus{Allocatable: common_info.ResourceList{Memory: "lots"}},
	}

	_, _, err := node.AllocatableResources()
	require.Error(t, err)

	var malformed *resource_info.MalformedQuantityError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "lots", malformed.Value)
	assert.Contains(t, err.Error(), "broken-node")
}

func TestNameDefaultsToEmpty(t *testing.T) {
	var node Node
	require.NoError(t, json.Unmarshal([]byte(`{"status": {"allocatable": {"cpu": "1"}}}`), &node))
	assert.Equal(t, "", node.Name())
}

func TestFromV1Node(t *testing.T) {
	v1Node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name:   "gpu-node-0",
			Labels: map[string]string{"rack": "rack-0"},
		},
		Status: corev1.NodeStatus{
			Allocatable: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("2"),
				corev1.ResourceMemory: resource.MustParse("1Gi"),
			},
		},
	}

	node := FromV1Node(v1Node)
	assert.Equal(t, "gpu-node-0", node.Name())
	assert.Equal(t, "rack-0", node.Metadata.Labels["rack"])

	cpu, memory, err := node.AllocatableResources()
	require.NoError(t, err)
	assert.InDelta(t, 2, cpu, 1e-9)
	assert.InDelta(t, 1<<30, memory, 1e-6)
}
