// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package resource_info

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	oneKiB = float64(1 << 10)
	oneMiB = float64(1 << 20)
	oneGiB = float64(1 << 30)
	oneTiB = float64(1 << 40)
)

var _ = Describe("ParseCPU", func() {
	DescribeTable("valid quantities",
		func(value string, expected float64) {
			cores, err := ParseCPU(value)
			Expect(err).NotTo(HaveOccurred())
			Expect(cores).To(BeNumerically("~", expected, 1e-12))
		},
		Entry("millicores", "500m", 0.5),
		Entry("single millicore", "1m", 0.001),
		Entry("whole cores", "2", 2.0),
		Entry("fractional cores", "1.5", 1.5),
		Entry("zero", "0", 0.0),
		Entry("zero millicores", "0m", 0.0),
		Entry("negative cores", "-2", -2.0),
		Entry("exponent notation", "1e3", 1000.0),
		Entry("exponent millicores", "1e3m", 1.0),
	)

	DescribeTable("malformed quantities",
		func(value string) {
			_, err := ParseCPU(value)
			Expect(err).To(HaveOccurred())
			var malformed *MalformedQuantityError
			Expect(errors.As(err, &malformed)).To(BeTrue())
			Expect(malformed.Value).To(Equal(value))
		},
		Entry("empty string", ""),
		Entry("bare suffix", "m"),
		Entry("garbage", "abc"),
		Entry("garbage with suffix", "abcm"),
	)
})

var _ = Describe("ParseMemory", func() {
	DescribeTable("valid quantities",
		func(value string, expected float64) {
			bytes, err := ParseMemory(value)
			Expect(err).NotTo(HaveOccurred())
			Expect(bytes).To(BeNumerically("~", expected, 1e-6))
		},
		Entry("kibibytes", "4Ki", 4*oneKiB),
		Entry("mebibytes", "256Mi", 256*oneMiB),
		Entry("gibibytes", "1Gi", oneGiB),
		Entry("tebibytes", "2Ti", 2*oneTiB),
		Entry("raw bytes", "1024", 1024.0),
		Entry("fractional mebibytes", "0.5Mi", 0.5*oneMiB),
		Entry("zero", "0", 0.0),
		Entry("negative bytes", "-1024", -1024.0),
		Entry("exponent bytes", "1e6", 1e6),
	)

	DescribeTable("malformed quantities",
		func(value string) {
			_, err := ParseMemory(value)
			var malformed *MalformedQuantityError
			Expect(errors.As(err, &malformed)).To(BeTrue())
			Expect(malformed.Value).To(Equal(value))
		},
		Entry("empty string", ""),
		Entry("bare suffix", "Gi"),
		Entry("garbage", "xyz"),
		Entry("unsupported decimal suffix", "1G"),
	)

	It("is not confused by the cpu millicore rule", func() {
		// "1m" in memory context has no binary suffix, so it fails as a
		// raw byte count instead of silently parsing as millibytes.
		_, err := ParseMemory("1m")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("quantity round-trips", func() {
	DescribeTable("cpu",
		func(value string) {
			cores, err := ParseCPU(value)
			Expect(err).NotTo(HaveOccurred())
			reparsed, err := ParseCPU(FormatCPU(cores))
			Expect(err).NotTo(HaveOccurred())
			Expect(reparsed).To(BeNumerically("~", cores, 1e-9))
		},
		Entry("millicores", "500m"),
		Entry("whole cores", "2"),
		Entry("fractional cores", "0.3"),
		Entry("zero", "0"),
	)

	DescribeTable("memory",
		func(value string) {
			bytes, err := ParseMemory(value)
			Expect(err).NotTo(HaveOccurred())
			reparsed, err := ParseMemory(FormatMemory(bytes))
			Expect(err).NotTo(HaveOccurred())
			Expect(reparsed).To(BeNumerically("~", bytes, 1e-6))
		},
		Entry("gibibytes", "1Gi"),
		Entry("mebibytes", "256Mi"),
		Entry("raw bytes", "1234567"),
		Entry("zero", "0"),
	)

	It("formats whole binary multiples with the largest suffix", func() {
		Expect(FormatMemory(oneGiB)).To(Equal("1Gi"))
		Expect(FormatMemory(256 * oneMiB)).To(Equal("256Mi"))
		Expect(FormatMemory(512)).To(Equal("512"))
	})

	It("formats fractional cores as millicores", func() {
		Expect(FormatCPU(0.5)).To(Equal("500m"))
		Expect(FormatCPU(2)).To(Equal("2"))
	})
})

var _ = Describe("FeatureVector", func() {
	It("keeps the fixed feature ordering", func() {
		vec := NewFeatureVector(2, oneGiB, 0.5, 256*oneMiB)
		Expect(vec[FeatureAllocatableCPU]).To(Equal(2.0))
		Expect(vec[FeatureAllocatableMemory]).To(Equal(oneGiB))
		Expect(vec[FeatureRequestedCPU]).To(Equal(0.5))
		Expect(vec[FeatureRequestedMemory]).To(Equal(256 * oneMiB))
		Expect(FeatureCount).To(Equal(4))
	})

	It("returns zero for out-of-range indexes", func() {
		vec := NewFeatureVector(1, 2, 3, 4)
		Expect(vec.Get(-1)).To(BeZero())
		Expect(vec.Get(FeatureCount)).To(BeZero())
	})
})
