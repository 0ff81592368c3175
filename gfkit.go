package gfkit

import (
	"context"
	"time"

	"github.com/hupe1980/gfkit/exclusive"
	"github.com/hupe1980/gfkit/flags"
	"github.com/hupe1980/gfkit/internal/conv"
	"github.com/hupe1980/gfkit/isin"
	"github.com/hupe1980/gfkit/table"
)

// Kernels is the checked entry point to the array kernels.
//
// Each method validates its preconditions, then runs the raw kernel from the
// flags, isin or exclusive package. On invalid input nothing is written and
// the returned error wraps ErrInvalidInput.
//
// Kernels keeps no state between calls and is safe for concurrent use.
// Concurrent calls must write to disjoint output positions.
type Kernels struct {
	logger  *Logger
	metrics MetricsCollector
	strict  bool
}

// New creates Kernels configured by opts.
func New(optFns ...Option) *Kernels {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return &Kernels{
		logger:  o.logger,
		metrics: o.metricsCollector,
		strict:  o.strict,
	}
}

// SetFlags sets flagArray[indices[i]] = 1 for i in [0, n).
func (k *Kernels) SetFlags(ctx context.Context, n int, flagArray []int16, indices []int64) error {
	start := time.Now()
	err := validateFlags(n, len(flagArray), indices)
	if err == nil {
		flags.SetN(n, flagArray, indices)
	}
	k.metrics.RecordSetFlags(n, time.Since(start), err)
	k.logger.LogSetFlags(ctx, n, len(flagArray), err)
	return err
}

// SetBoolFlags sets flagArray[i] = true for every i in indices.
func (k *Kernels) SetBoolFlags(ctx context.Context, flagArray []bool, indices []int64) error {
	start := time.Now()
	err := validateFlags(len(indices), len(flagArray), indices)
	if err == nil {
		flags.SetBool(flagArray, indices)
	}
	k.metrics.RecordSetFlags(len(indices), time.Since(start), err)
	k.logger.LogSetFlags(ctx, len(indices), len(flagArray), err)
	return err
}

func validateFlags(n, flagLen int, indices []int64) error {
	if n < 0 || n > len(indices) {
		return &ErrInvalidArgument{Name: "length", Value: n}
	}
	if pos := flags.Check(flagLen, indices[:n]); pos >= 0 {
		return &ErrIndexOutOfRange{Name: "indices", Position: pos, Index: int(indices[pos]), Len: flagLen}
	}
	return nil
}

// NotIsIn writes result[slot] = key not in column 0 of arr2 for every
// (key, slot) row of arr1. See package isin for the grouping and ordering
// preconditions.
func (k *Kernels) NotIsIn(ctx context.Context, arr1, arr2 table.Table[uint64], result []bool) (isin.Stats, error) {
	start := time.Now()
	var st isin.Stats
	err := k.validateNotIsIn(arr1, arr2, len(result))
	if err == nil {
		st = isin.NotIn(arr1, arr2, result)
	}
	k.metrics.RecordNotIsIn(st, time.Since(start), err)
	k.logger.LogNotIsIn(ctx, st, err)
	return st, err
}

// NotIsInFlat is NotIsIn over row-major flat buffers with explicit shapes.
func (k *Kernels) NotIsInFlat(ctx context.Context, arr1, arr2 []uint64, arr1Rows, arr1Cols, arr2Rows, arr2Cols int, result []bool) (isin.Stats, error) {
	t1, err := table.New(arr1, arr1Rows, arr1Cols)
	if err != nil {
		err = translateError("arr1", arr1Rows, arr1Cols, len(arr1), err)
		return k.rejectNotIsIn(ctx, err)
	}
	t2, err := table.New(arr2, arr2Rows, arr2Cols)
	if err != nil {
		err = translateError("arr2", arr2Rows, arr2Cols, len(arr2), err)
		return k.rejectNotIsIn(ctx, err)
	}
	return k.NotIsIn(ctx, t1, t2, result)
}

// NotIsInSet is NotIsIn with membership answered by a prebuilt KeySet.
func (k *Kernels) NotIsInSet(ctx context.Context, arr1 table.Table[uint64], set *isin.KeySet, result []bool) (isin.Stats, error) {
	start := time.Now()
	var st isin.Stats
	err := validateKeyTable(arr1, len(result))
	if err == nil && set == nil {
		err = &ErrInvalidArgument{Name: "key set", Value: nil}
	}
	if err == nil {
		st = isin.NotInSet(arr1, set, result)
	}
	k.metrics.RecordNotIsIn(st, time.Since(start), err)
	k.logger.LogNotIsIn(ctx, st, err)
	return st, err
}

func (k *Kernels) rejectNotIsIn(ctx context.Context, err error) (isin.Stats, error) {
	k.metrics.RecordNotIsIn(isin.Stats{}, 0, err)
	k.logger.LogNotIsIn(ctx, isin.Stats{}, err)
	return isin.Stats{}, err
}

func (k *Kernels) validateNotIsIn(arr1, arr2 table.Table[uint64], resultLen int) error {
	if err := validateKeyTable(arr1, resultLen); err != nil {
		return err
	}
	if arr2.Rows() > 0 && arr2.Cols() < 1 {
		return &ErrInvalidArgument{Name: "arr2 columns", Value: arr2.Cols()}
	}
	if k.strict {
		if row, ok := isin.IsSortedColumn(arr2, isin.KeyColumn); !ok {
			return &ErrUnsortedKeys{Name: "arr2", Row: row}
		}
	}
	return nil
}

func validateKeyTable(arr1 table.Table[uint64], resultLen int) error {
	if arr1.Rows() > 0 && arr1.Cols() < 2 {
		return &ErrInvalidArgument{Name: "arr1 columns", Value: arr1.Cols()}
	}
	for i := 0; i < arr1.Rows(); i++ {
		raw := arr1.At(i, isin.SlotColumn)
		slot, err := conv.Uint64ToInt(raw)
		if err != nil {
			return &ErrInvalidArgument{Name: "slot", Value: raw, cause: err}
		}
		if slot >= resultLen {
			return &ErrIndexOutOfRange{Name: "slot", Position: i, Index: slot, Len: resultLen}
		}
	}
	return nil
}

// SubtractExclusive performs, for i in [0, count),
//
//	metrics[parent+i*stride-1] -= metrics[node+i*stride-1]
//
// converting inclusive values into exclusive ones in place.
func (k *Kernels) SubtractExclusive(ctx context.Context, node, parent, count, stride int, metrics []float64) error {
	start := time.Now()
	err := validateSubtract(node, parent, count, stride, len(metrics))
	if err == nil {
		exclusive.Subtract(node, parent, count, stride, metrics)
	}
	k.metrics.RecordSubtract(count, time.Since(start), err)
	k.logger.LogSubtract(ctx, node, parent, count, stride, err)
	return err
}

// SubtractExclusivePairs applies SubtractExclusive to every pair in order.
// All pairs are validated before any is applied.
func (k *Kernels) SubtractExclusivePairs(ctx context.Context, pairs []exclusive.Pair, count, stride int, metrics []float64) error {
	start := time.Now()
	var err error
	for _, pr := range pairs {
		if err = validateSubtract(pr.Node, pr.Parent, count, stride, len(metrics)); err != nil {
			break
		}
	}
	if err == nil {
		exclusive.SubtractPairs(pairs, count, stride, metrics)
	}
	k.metrics.RecordSubtract(count*len(pairs), time.Since(start), err)
	k.logger.LogSubtractPairs(ctx, len(pairs), count, stride, err)
	return err
}

func validateSubtract(node, parent, count, stride, n int) error {
	if count < 0 {
		return &ErrInvalidArgument{Name: "count", Value: count}
	}
	if count == 0 {
		return nil
	}
	last, err := conv.MulInt(count-1, stride)
	if err != nil {
		return &ErrInvalidArgument{Name: "stride", Value: stride, cause: err}
	}
	for _, id := range [...]struct {
		name string
		v    int
	}{{"node", node}, {"parent", parent}} {
		end, err := conv.AddInt(id.v, last)
		if err != nil {
			return &ErrInvalidArgument{Name: id.name, Value: id.v, cause: err}
		}
		if id.v < 1 || id.v > n {
			return &ErrIndexOutOfRange{Name: id.name, Position: 0, Index: id.v - 1, Len: n}
		}
		if end < 1 || end > n {
			return &ErrIndexOutOfRange{Name: id.name, Position: count - 1, Index: end - 1, Len: n}
		}
	}
	return nil
}
