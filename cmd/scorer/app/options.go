// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/pflag"

	"github.com/clusterml/node-scorer/pkg/scorer/policy"
)

const defaultListenAddress = ":5000"

type Options struct {
	ListenAddress string
	PolicyName    string
	CPUWeight     float64
	MemoryWeight  float64
	ConstantScore float64
	EnablePprof   bool
	Development   bool
}

func InitOptions(fs *pflag.FlagSet) *Options {
	o := &Options{}

	fs.StringVar(&o.ListenAddress, "listen-address", defaultListenAddress, "Address the scoring service binds to.")
	fs.StringVar(&o.PolicyName, "policy", policy.FitPolicyName, "Scoring policy to serve.")
	fs.Float64Var(&o.CPUWeight, "cpu-weight", 0.5, "CPU weight of the fit policy.")
	fs.Float64Var(&o.MemoryWeight, "memory-weight", 0.5, "Memory weight of the fit policy.")
	fs.Float64Var(&o.ConstantScore, "constant-score", 50, "Score returned by the constant policy.")
	fs.BoolVar(&o.EnablePprof, "enable-pprof", false, "Expose pprof endpoints under /debug/pprof.")
	fs.BoolVar(&o.Development, "development", false, "Use the development logger configuration.")

	return o
}

func (o *Options) PolicyParams() policy.Params {
	return policy.Params{
		CPUWeight:     o.CPUWeight,
		MemoryWeight:  o.MemoryWeight,
		ConstantScore: o.ConstantScore,
	}
}
