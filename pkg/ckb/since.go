package ckb

import "fmt"

// SinceMetric is the unit of a since value.
type SinceMetric uint8

const (
	SinceBlockNumber SinceMetric = 0
	SinceEpoch       SinceMetric = 1
	SinceTimestamp   SinceMetric = 2
)

const (
	sinceRelativeFlag = uint64(1) << 63
	sinceMetricShift  = 61
	sinceMetricMask   = uint64(0b11) << sinceMetricShift
	sinceReservedMask = uint64(0b11111) << 56
	sinceValueMask    = uint64(1)<<56 - 1
)

// Since is the decoded lock-time condition of an input.
type Since struct {
	Relative bool
	Metric   SinceMetric
	Value    uint64
}

func SinceFromUint64(v uint64) (Since, error) {
	if v&sinceReservedMask != 0 {
		return Since{}, fmt.Errorf("%w: reserved bits set in 0x%x", ErrInvalidSince, v)
	}
	metric := SinceMetric((v & sinceMetricMask) >> sinceMetricShift)
	if metric > SinceTimestamp {
		return Since{}, fmt.Errorf("%w: metric %d in 0x%x", ErrInvalidSince, metric, v)
	}
	return Since{
		Relative: v&sinceRelativeFlag != 0,
		Metric:   metric,
		Value:    v & sinceValueMask,
	}, nil
}

func (s Since) Uint64() (uint64, error) {
	if s.Metric > SinceTimestamp {
		return 0, fmt.Errorf("%w: metric %d", ErrInvalidSince, s.Metric)
	}
	if s.Value > sinceValueMask {
		return 0, fmt.Errorf("%w: value %d exceeds 56 bits", ErrInvalidSince, s.Value)
	}
	v := uint64(s.Metric)<<sinceMetricShift | s.Value
	if s.Relative {
		v |= sinceRelativeFlag
	}
	return v, nil
}
