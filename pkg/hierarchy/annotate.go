// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"fmt"
)

const (
	RackLabelKey   = "rack"
	ServerLabelKey = "server"

	rackValueFormat   = "rack-%d"
	serverValueFormat = "srv-%d"
)

// AnnotateNodeDocs assigns rack and server labels to node documents based
// on their position in the stream: with serversPerRack=4, documents 0-3
// land in rack-0 as srv-0..srv-3, documents 4-7 in rack-1, and so on.
// Existing rack/server labels are never clobbered. Non-mapping documents
// are skipped but still occupy a position.
func AnnotateNodeDocs(docs []any, serversPerRack int) {
	for idx, doc := range docs {
		node, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		labels := ensureMap(ensureMap(node, "metadata"), "labels")
		if _, found := labels[RackLabelKey]; !found {
			labels[RackLabelKey] = fmt.Sprintf(rackValueFormat, idx/serversPerRack)
		}
		if _, found := labels[ServerLabelKey]; !found {
			labels[ServerLabelKey] = fmt.Sprintf(serverValueFormat, idx%serversPerRack)
		}
	}
}

// AnnotatePodDocs sets spec.schedulerName on every pod document that does
// not already declare one.
func AnnotatePodDocs(docs []any, schedulerName string) {
	for _, doc := range docs {
		pod, ok := doc.(map[string]any)
		if !ok {
			continue
		}
		spec := ensureMap(pod, "spec")
		if _, found := spec["schedulerName"]; !found {
			spec["schedulerName"] = schedulerName
		}
	}
}

func ensureMap(parent map[string]any, key string) map[string]any {
	if child, ok := parent[key].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	parent[key] = child
	return child
}
