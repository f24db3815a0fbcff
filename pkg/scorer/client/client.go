// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/clusterml/node-scorer/pkg/scorer/api"
	"github.com/clusterml/node-scorer/pkg/scorer/api/node_info"
	"github.com/clusterml/node-scorer/pkg/scorer/api/pod_info"
)

// Client calls a remote scoring service. It is the integration point for
// scheduler plugins that delegate node ordering to the service.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{endpoint: endpoint, client: httpClient}
}

// ScoreNodes posts the pod with its candidate nodes and returns the
// identifier to score mapping.
func (c *Client) ScoreNodes(ctx context.Context, pod *pod_info.Pod, nodes []*node_info.Node) (map[string]int, error) {
	payload, err := json.Marshal(api.ScoreRequest{Pod: *pod, Nodes: nodes})
	if err != nil {
		return nil, errors.Wrap(err, "marshal score request")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build score request")
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "call scoring service")
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var remote api.ErrorResponse
		if decodeErr := json.NewDecoder(response.Body).Decode(&remote); decodeErr == nil && remote.Error != "" {
			return nil, errors.Errorf("scoring service returned %d (%s layer): %s",
				response.StatusCode, remote.Layer, remote.Error)
		}
		return nil, errors.Errorf("scoring service returned %d", response.StatusCode)
	}

	var result api.ScoreResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode score response")
	}
	return result.Scores, nil
}
