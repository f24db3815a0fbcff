// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/pkg/hierarchy"
)

func main() {
	var (
		dataDir        = pflag.String("data-dir", "data", "Base directory containing openb_pod_list_* workload directories.")
		serversPerRack = pflag.Int("servers-per-rack", hierarchy.DefaultServersPerRack, "Number of servers assigned to each rack.")
		schedulerName  = pflag.String("scheduler-name", hierarchy.DefaultSchedulerName, "Scheduler name to set on pods.")
	)
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	generator, err := hierarchy.NewGenerator(hierarchy.Config{
		DataDir:        *dataDir,
		ServersPerRack: *serversPerRack,
		SchedulerName:  *schedulerName,
	}, logger)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := generator.Run(); err != nil {
		logger.Fatal("hierarchy generation failed", zap.Error(err))
	}
}
