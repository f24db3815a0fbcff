// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package hierarchy

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	workloadDirPrefix = "openb_pod_list"
	nodeListPrefix    = "openb_node_list"
	podListPrefix     = "openb_pod_list"
	hierSuffix        = "-hier"
	yamlExtension     = ".yaml"

	DefaultServersPerRack = 4
	DefaultSchedulerName  = "rl-scheduler"
)

type Config struct {
	DataDir        string
	ServersPerRack int
	SchedulerName  string
}

// Generator rewrites workload directories under a data root into their
// hierarchical variants: node lists gain rack/server labels, pod lists
// gain a schedulerName, and both are written beside the originals with a
// -hier suffix.
type Generator struct {
	config Config
	logger *zap.Logger
}

func NewGenerator(config Config, logger *zap.Logger) (*Generator, error) {
	if config.ServersPerRack <= 0 {
		return nil, errors.Errorf("servers per rack must be positive, got %d", config.ServersPerRack)
	}
	if config.SchedulerName == "" {
		return nil, errors.New("scheduler name must not be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{config: config, logger: logger}, nil
}

// Run processes every workload directory under the data root. Directories
// are independent, so a failure in one does not stop the rest; all
// failures are reported together.
func (g *Generator) Run() error {
	entries, err := os.ReadDir(g.config.DataDir)
	if err != nil {
		return errors.Wrapf(err, "read data directory %s", g.config.DataDir)
	}

	var errs error
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), workloadDirPrefix) {
			continue
		}
		dirPath := filepath.Join(g.config.DataDir, entry.Name())
		if err := g.processDirectory(dirPath); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, entry.Name()))
		}
	}
	return errs
}

func (g *Generator) processDirectory(dirPath string) error {
	nodeList, podList, err := findListFiles(dirPath)
	if err != nil {
		return err
	}
	if nodeList == "" || podList == "" {
		// Nothing to do in this directory.
		return nil
	}

	nodeDocs, err := readDocs(nodeList)
	if err != nil {
		return err
	}
	AnnotateNodeDocs(nodeDocs, g.config.ServersPerRack)
	nodeOut := hierOutputPath(nodeList)
	if err := writeDocs(nodeOut, nodeDocs); err != nil {
		return err
	}

	podDocs, err := readDocs(podList)
	if err != nil {
		return err
	}
	AnnotatePodDocs(podDocs, g.config.SchedulerName)
	podOut := hierOutputPath(podList)
	if err := writeDocs(podOut, podDocs); err != nil {
		return err
	}

	g.logger.Info("processed workload directory",
		zap.String("dir", filepath.Base(dirPath)),
		zap.String("nodes", filepath.Base(nodeOut)),
		zap.String("pods", filepath.Base(podOut)))
	return nil
}

// findListFiles locates the node and pod list YAMLs in a workload
// directory, ignoring previously generated -hier outputs so reruns stay
// idempotent.
func findListFiles(dirPath string) (nodeList, podList string, err error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", "", errors.Wrapf(err, "read workload directory %s", dirPath)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if filepath.Ext(name) != yamlExtension {
			continue
		}
		stem := strings.TrimSuffix(name, yamlExtension)
		if strings.HasSuffix(stem, hierSuffix) {
			continue
		}
		switch {
		case strings.HasPrefix(name, nodeListPrefix) && nodeList == "":
			nodeList = filepath.Join(dirPath, name)
		case strings.HasPrefix(name, podListPrefix) && podList == "":
			podList = filepath.Join(dirPath, name)
		}
	}
	return nodeList, podList, nil
}

func hierOutputPath(path string) string {
	stem := strings.TrimSuffix(path, yamlExtension)
	return stem + hierSuffix + yamlExtension
}

func readDocs(path string) ([]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var docs []any
	decoder := yaml.NewDecoder(file)
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func writeDocs(path string, docs []any) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	for _, doc := range docs {
		if err := encoder.Encode(doc); err != nil {
			file.Close()
			return errors.Wrapf(err, "encode %s", path)
		}
	}
	if err := encoder.Close(); err != nil {
		file.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	return file.Close()
}
