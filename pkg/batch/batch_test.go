// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/clusterml/node-scorer/pkg/scorer/engine"
	"github.com/clusterml/node-scorer/pkg/scorer/policy"
)

const nodesYAML = `apiVersion: v1
kind: Node
metadata:
  name: node-0
status:
  allocatable:
    cpu: "2"
    memory: 1Gi
---
apiVersion: v1
kind: Node
metadata:
  name: node-1
status:
  allocatable:
    cpu: "4"
    memory: 2Gi
`

const podsYAML = `apiVersion: v1
kind: Pod
metadata:
  name: pod-0
spec:
  containers:
  - name: main
    resources:
      requests:
        cpu: 500m
        memory: 256Mi
---
apiVersion: v1
kind: Pod
metadata:
  name: pod-1
spec:
  containers:
  - name: main
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNodeList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nodes.yaml", nodesYAML)

	nodes, err := LoadNodeList(path)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "node-0", nodes[0].Name)
	assert.Equal(t, "2", nodes[0].Status.Allocatable.Cpu().String())
}

func TestLoadPodList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pods.yaml", podsYAML)

	pods, err := LoadPodList(path)
	require.NoError(t, err)
	require.Len(t, pods, 2)
	assert.Equal(t, "pod-0", pods[0].Name)
	require.Len(t, pods[0].Spec.Containers, 1)
}

func TestRunnerProducesReport(t *testing.T) {
	dir := t.TempDir()
	nodesFile := writeFile(t, dir, "nodes.yaml", nodesYAML)
	podsFile := writeFile(t, dir, "pods.yaml", podsYAML)
	outputFile := filepath.Join(dir, "scores.yaml")

	scoringPolicy, err := policy.New(policy.ConstantPolicyName, policy.Params{ConstantScore: 60})
	require.NoError(t, err)

	runner := NewRunner(Config{
		NodesFile:  nodesFile,
		PodsFile:   podsFile,
		OutputFile: outputFile,
	}, engine.New(scoringPolicy, nil), nil)
	require.NoError(t, runner.Run())

	raw, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal(raw, &report))
	assert.Equal(t, policy.ConstantPolicyName, report.Policy)
	assert.Equal(t, map[string]map[string]int{
		"pod-0": {"node-0": 60, "node-1": 60},
		"pod-1": {"node-0": 60, "node-1": 60},
	}, report.Scores)
}

func TestRunnerMissingFile(t *testing.T) {
	scoringPolicy, err := policy.New(policy.ConstantPolicyName, policy.Params{ConstantScore: 1})
	require.NoError(t, err)

	runner := NewRunner(Config{
		NodesFile:  "does-not-exist.yaml",
		PodsFile:   "also-missing.yaml",
		OutputFile: "out.yaml",
	}, engine.New(scoringPolicy, nil), nil)
	assert.Error(t, runner.Run())
}
