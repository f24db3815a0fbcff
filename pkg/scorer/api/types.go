// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/clusterml/node-scorer/pkg/scorer/api/node_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/pod_info"
)

// ScoreRequest is the body of POST /score: one pod and its candidate nodes.
type ScoreRequest struct {
	Pod   pod_info.Pod      `json:"pod"`
	Nodes []*node_info.Node `json:"nodes"`
}

// ScoreResponse maps candidate node identifiers to integer scores. The key
// set is exactly the distinct identifiers of the request's candidates.
type ScoreResponse struct {
	Scores map[string]int `json:"scores"`
}

// ErrorResponse reports a rejected request along with the layer that
// rejected it ("request", "quantity" or "policy").
type ErrorResponse struct {
	Error string `json:"error"`
	Layer string `json:"layer,omitempty"`
}
