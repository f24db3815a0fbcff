// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"io"
	"os"

	"github.com/pkg/errors"
	yamlv3 "gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

// LoadNodeList reads a multi-document YAML file of Kubernetes node objects.
func LoadNodeList(path string) ([]*corev1.Node, error) {
	var nodes []*corev1.Node
	err := forEachDocument(path, func(doc []byte) error {
		node := &corev1.Node{}
		if err := yaml.Unmarshal(doc, node); err != nil {
			return errors.Wrap(err, "unmarshal node")
		}
		nodes = append(nodes, node)
		return nil
	})
	return nodes, err
}

// LoadPodList reads a multi-document YAML file of Kubernetes pod objects.
func LoadPodList(path string) ([]*corev1.Pod, error) {
	var pods []*corev1.Pod
	err := forEachDocument(path, func(doc []byte) error {
		pod := &corev1.Pod{}
		if err := yaml.Unmarshal(doc, pod); err != nil {
			return errors.Wrap(err, "unmarshal pod")
		}
		pods = append(pods, pod)
		return nil
	})
	return pods, err
}

// forEachDocument splits a multi-document YAML stream and hands each
// non-empty document back as bytes.
func forEachDocument(path string, handle func(doc []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	decoder := yamlv3.NewDecoder(file)
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrapf(err, "decode %s", path)
		}
		if doc == nil {
			continue
		}
		raw, err := yamlv3.Marshal(doc)
		if err != nil {
			return errors.Wrapf(err, "re-encode document from %s", path)
		}
		if err := handle(raw); err != nil {
			return errors.Wrapf(err, "document from %s", path)
		}
	}
}
