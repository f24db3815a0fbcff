// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/clusterml/node-scorer/pkg/scorer/api"
	"github.com/clusterml/node-scorer/pkg/scorer/api/resource_info"
	"github.com/clusterml/node-scorer/pkg/scorer/metrics"
)

const (
	layerRequest  = "request"
	layerQuantity = "quantity"
	layerPolicy   = "policy"
)

func (s *Server) handleScore(c *gin.Context) {
	timer := prometheus.NewTimer(metrics.ScoreLatency)
	defer timer.ObserveDuration()

	var request api.ScoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		metrics.ScoreRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Layer: layerRequest})
		return
	}

	scores, err := s.engine.ScoreNodes(&request.Pod, request.Nodes)
	if err != nil {
		var malformed *resource_info.MalformedQuantityError
		if errors.As(err, &malformed) {
			metrics.ScoreRequests.WithLabelValues("malformed_quantity").Inc()
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Layer: layerQuantity})
			return
		}
		metrics.ScoreRequests.WithLabelValues("scoring_failure").Inc()
		s.logger.Error("scoring failed",
			zap.String("pod", request.Pod.Metadata.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error(), Layer: layerPolicy})
		return
	}

	metrics.ScoreRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, api.ScoreResponse{Scores: scores})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
