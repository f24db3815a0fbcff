// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/pkg/errors"

	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
)

const ConstantPolicyName = "constant"

// constantPolicy gives every node the same score. Useful for smoke tests
// and for verifying the endpoint contract without a real model.
type constantPolicy struct {
	score float64
}

func newConstantPolicy(params Params) (Policy, error) {
	if params.ConstantScore < 0 || params.ConstantScore > MaxScore {
		return nil, errors.Errorf("constant score %v outside [0, %v]", params.ConstantScore, MaxScore)
	}
	return &constantPolicy{score: params.ConstantScore}, nil
}

func (c *constantPolicy) Name() string {
	return ConstantPolicyName
}

func (c *constantPolicy) Score(_ resource_info.FeatureVector) (float64, error) {
	return c.score, nil
}
