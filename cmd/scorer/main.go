// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/cmd/scorer/app"
	"github.com/clusterml/node-scorer/pkg/scorer/engine"
	"github.com/clusterml/node-scorer/pkg/scorer/policy"
	"github.com/clusterml/node-scorer/pkg/scorer/service"
)

func main() {
	opts := app.InitOptions(pflag.CommandLine)
	pflag.Parse()

	logger := buildLogger(opts.Development)
	defer logger.Sync()

	scoringPolicy, err := policy.New(opts.PolicyName, opts.PolicyParams())
	if err != nil {
		logger.Fatal("invalid scoring policy", zap.Error(err))
	}

	scoringEngine := engine.New(scoringPolicy, logger.Named("engine"))
	server := service.New(service.Config{
		ListenAddress: opts.ListenAddress,
		EnablePprof:   opts.EnablePprof,
	}, scoringEngine, logger.Named("service"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting scoring service", zap.String("policy", scoringPolicy.Name()))
	if err := server.Run(ctx); err != nil {
		logger.Fatal("scoring service failed", zap.Error(err))
	}
}

func buildLogger(development bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
