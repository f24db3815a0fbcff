// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/clusterml/node-scorer/pkg/scorer/api/node_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/pod_info"
	"github.com/clusterml/node-scorer/pkg/scorer/engine"
)

type Config struct {
	NodesFile  string
	PodsFile   string
	OutputFile string
}

// Report is the offline scoring output: for every pod, the score of every
// candidate node.
type Report struct {
	Policy string                    `json:"policy"`
	Scores map[string]map[string]int `json:"scores"`
}

// Runner scores a pod list against a node list offline, without the HTTP
// service in the path.
type Runner struct {
	config Config
	engine *engine.Engine
	logger *zap.Logger
}

func NewRunner(config Config, scoringEngine *engine.Engine, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{config: config, engine: scoringEngine, logger: logger}
}

func (r *Runner) Run() error {
	v1Nodes, err := LoadNodeList(r.config.NodesFile)
	if err != nil {
		return err
	}
	v1Pods, err := LoadPodList(r.config.PodsFile)
	if err != nil {
		return err
	}

	nodes := make([]*node_info.Node, 0, len(v1Nodes))
	var clusterCPU, clusterMemory float64
	for _, v1Node := range v1Nodes {
		node := node_info.FromV1Node(v1Node)
		cpu, memory, err := node.AllocatableResources()
		if err != nil {
			return err
		}
		clusterCPU += cpu
		clusterMemory += memory
		nodes = append(nodes, node)
	}

	report := Report{
		Policy: r.engine.PolicyName(),
		Scores: make(map[string]map[string]int, len(v1Pods)),
	}
	for _, v1Pod := range v1Pods {
		pod := pod_info.FromV1Pod(v1Pod)
		scores, err := r.engine.ScoreNodes(pod, nodes)
		if err != nil {
			return errors.Wrapf(err, "score pod %q", pod.Metadata.Name)
		}
		report.Scores[pod.Metadata.Name] = scores
	}

	raw, err := yaml.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	if err := os.WriteFile(r.config.OutputFile, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write report %s", r.config.OutputFile)
	}

	r.logger.Info("batch scoring complete",
		zap.String("policy", report.Policy),
		zap.Int("pods", len(v1Pods)),
		zap.Int("nodes", len(nodes)),
		zap.Float64("clusterCpuCores", clusterCPU),
		zap.String("clusterMemory", humanize.IBytes(uint64(clusterMemory))),
		zap.String("report", r.config.OutputFile))
	return nil
}
