package handlers

import (
	"errors"
	"strconv"
	"strings"
)

var errBadRange = errors.New("unsatisfiable range")

// parseRange parses a "bytes=<start>-<end>" header against an object of
// totalSize bytes. A missing end means "through the last byte". An end past
// the object is clamped to totalSize-1.
func parseRange(header string, totalSize int64) (start, end int64, err error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, errBadRange
	}
	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return 0, 0, errBadRange
	}
	start, err = strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil || start < 0 || start >= totalSize {
		return 0, 0, errBadRange
	}
	if endStr = strings.TrimSpace(endStr); endStr == "" {
		end = totalSize - 1
	} else {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return 0, 0, errBadRange
		}
		if end >= totalSize {
			end = totalSize - 1
		}
	}
	if start > end {
		return 0, 0, errBadRange
	}
	return start, end, nil
}
