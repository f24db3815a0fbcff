// Copyright 2025 ClusterML
// SPDX-License-Identifier: Apache-2.0

package resource_info

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	milliCPUSuffix = "m"

	// MilliCPUToCores converts millicores to whole cores.
	MilliCPUToCores = 1000.0
)

type memoryUnit struct {
	suffix     string
	multiplier float64
}

// memoryUnits is walked in order, first match wins. Keep it an explicit
// slice so suffix precedence stays auditable.
var memoryUnits = []memoryUnit{
	{"Ki", 1 << 10},
	{"Mi", 1 << 20},
	{"Gi", 1 << 30},
	{"Ti", 1 << 40},
}

// MalformedQuantityError reports a resource quantity whose numeric part
// failed to parse after suffix stripping.
type MalformedQuantityError struct {
	Value string
	Err   error
}

func (e *MalformedQuantityError) Error() string {
	return fmt.Sprintf("malformed resource quantity %q: %v", e.Value, e.Err)
}

func (e *MalformedQuantityError) Unwrap() error { return e.Err }

// ParseCPU converts a cpu quantity string to whole cores. A trailing "m"
// marks millicores: "500m" is 0.5 cores, "2" is 2 cores.
func ParseCPU(value string) (float64, error) {
	if strings.HasSuffix(value, milliCPUSuffix) {
		milli, err := parseDecimal(value, strings.TrimSuffix(value, milliCPUSuffix))
		if err != nil {
			return 0, err
		}
		return milli / MilliCPUToCores, nil
	}
	return parseDecimal(value, value)
}

// ParseMemory converts a memory quantity string to bytes. The binary
// suffixes Ki, Mi, Gi and Ti are recognized; a string without a suffix is
// a raw byte count.
func ParseMemory(value string) (float64, error) {
	for _, unit := range memoryUnits {
		if strings.HasSuffix(value, unit.suffix) {
			amount, err := parseDecimal(value, strings.TrimSuffix(value, unit.suffix))
			if err != nil {
				return 0, err
			}
			return amount * unit.multiplier, nil
		}
	}
	return parseDecimal(value, value)
}

// FormatCPU renders cores back to the wire convention: whole cores stay
// unsuffixed, fractional cores become millicores.
func FormatCPU(cores float64) string {
	if cores == math.Trunc(cores) {
		return strconv.FormatFloat(cores, 'f', -1, 64)
	}
	return strconv.FormatFloat(cores*MilliCPUToCores, 'f', -1, 64) + milliCPUSuffix
}

// FormatMemory renders bytes using the largest binary suffix that divides
// the amount exactly, falling back to raw bytes.
func FormatMemory(bytes float64) string {
	for i := len(memoryUnits) - 1; i >= 0; i-- {
		unit := memoryUnits[i]
		scaled := bytes / unit.multiplier
		if scaled != 0 && scaled == math.Trunc(scaled) {
			return strconv.FormatFloat(scaled, 'f', -1, 64) + unit.suffix
		}
	}
	return strconv.FormatFloat(bytes, 'f', -1, 64)
}

func parseDecimal(original, remainder string) (float64, error) {
	parsed, err := strconv.ParseFloat(remainder, 64)
	if err != nil {
		return 0, &MalformedQuantityError{Value: original, Err: err}
	}
	return parsed, nil
}
