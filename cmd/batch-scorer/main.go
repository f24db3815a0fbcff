// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/pkg/batch"
	"github.com/clusterml/node-scorer/pkg/scorer/engine"
	"github.com/clusterml/node-scorer/pkg/scorer/policy"
)

func main() {
	var (
		nodesFile     = pflag.String("nodes-file", "", "Multi-document YAML file of node objects.")
		podsFile      = pflag.String("pods-file", "", "Multi-document YAML file of pod objects.")
		outputFile    = pflag.String("output", "scores.yaml", "Path of the scoring report.")
		policyName    = pflag.String("policy", policy.FitPolicyName, "Scoring policy to evaluate.")
		cpuWeight     = pflag.Float64("cpu-weight", 0.5, "CPU weight of the fit policy.")
		memoryWeight  = pflag.Float64("memory-weight", 0.5, "Memory weight of the fit policy.")
		constantScore = pflag.Float64("constant-score", 50, "Score returned by the constant policy.")
	)
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *nodesFile == "" || *podsFile == "" {
		logger.Fatal("both --nodes-file and --pods-file are required")
	}

	scoringPolicy, err := policy.New(*policyName, policy.Params{
		CPUWeight:     *cpuWeight,
		MemoryWeight:  *memoryWeight,
		ConstantScore: *constantScore,
	})
	if err != nil {
		logger.Fatal("invalid scoring policy", zap.Error(err))
	}

	runner := batch.NewRunner(batch.Config{
		NodesFile:  *nodesFile,
		PodsFile:   *podsFile,
		OutputFile: *outputFile,
	}, engine.New(scoringPolicy, logger.Named("engine")), logger)

	if err := runner.Run(); err != nil {
		logger.Fatal("batch scoring failed", zap.Error(err))
	}
}
