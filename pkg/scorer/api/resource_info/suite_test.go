// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package resource_info

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestResourceInfo(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "resource info tests")
}
