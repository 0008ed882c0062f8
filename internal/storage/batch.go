package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/metrics"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

type batchOp struct {
	label string
	run   func(ctx context.Context) error
}

// Batch issues independent writes concurrently and reports which of them
// failed. Nothing is rolled back: a partial failure leaves the successful
// writes in place.
type Batch struct {
	ops     []batchOp
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewBatch(logger logrus.FieldLogger, m *metrics.Metrics) *Batch {
	return &Batch{logger: logger, metrics: m}
}

// Add queues run under label. Labels name the kind of write ("sadd:cuisine"),
// not the entity, and may repeat.
func (b *Batch) Add(label string, run func(ctx context.Context) error) {
	b.ops = append(b.ops, batchOp{label: label, run: run})
}

func (b *Batch) Len() int {
	return len(b.ops)
}

type BatchResult struct {
	Total     int
	Succeeded []string
	Failed    []string
	errs      *multierror.Error
}

// Err is nil when every op succeeded, a *BatchError otherwise.
func (r *BatchResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return &BatchError{Failed: r.Failed, Cause: r.errs.ErrorOrNil()}
}

func (b *Batch) Run(ctx context.Context) *BatchResult {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result = &BatchResult{Total: len(b.ops)}
	)

	for _, op := range b.ops {
		wg.Add(1)
		go func(op batchOp) {
			defer wg.Done()
			err := op.run(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, op.label)
				result.errs = multierror.Append(result.errs, fmt.Errorf("%s: %w", op.label, err))
				return
			}
			result.Succeeded = append(result.Succeeded, op.label)
		}(op)
	}
	wg.Wait()

	sort.Strings(result.Succeeded)
	sort.Strings(result.Failed)

	for _, label := range result.Failed {
		b.metrics.BatchOpFailed(label)
	}
	if len(result.Failed) > 0 && b.logger != nil {
		b.logger.WithFields(logrus.Fields{
			"failed":    result.Failed,
			"succeeded": len(result.Succeeded),
			"total":     result.Total,
		}).Warn("partial batch write, no rollback performed")
	}
	return result
}

type BatchError struct {
	Failed []string
	Cause  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d batch write(s) failed [%s]: %v",
		domain.ErrUpstream, len(e.Failed), strings.Join(e.Failed, ", "), e.Cause)
}

func (e *BatchError) Unwrap() []error {
	return []error{domain.ErrUpstream, e.Cause}
}
