package main

import (
	"math"
	"strconv"
	"strings"
)

// ParseMetric extracts the number that follows the first occurrence of
// marker in line, up to the next whitespace. Leading whitespace after the
// marker is allowed, so both "RPM:1200" and "RPM: 1200 ok" parse.
func ParseMetric(line, marker string) (float64, bool) {
	i := strings.Index(line, marker)
	if i < 0 {
		return 0, false
	}
	fields := strings.Fields(line[i+len(marker):])
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
