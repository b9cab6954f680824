package convert

import (
	"context"
	"errors"
	"strconv"

	"course-graph/internal/concurrency"
	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/source"
)

// BatchResult collects a multi-document run. Outputs and Errors are indexed
// like the input locations; exactly one of the two is set per document.
type BatchResult struct {
	Outputs []*Output
	Errors  []error
	Total   domain.Summary
	// Diagnostics merges the findings of every converted document.
	Diagnostics diagnostic.Diagnostics
	Failed      int
}

// Err joins the per-document errors, or returns nil when all succeeded.
func (b BatchResult) Err() error {
	return errors.Join(b.Errors...)
}

// Batch converts every location independently on the worker pool. Each
// document gets its own graph; a failure never stops the others. Once all
// files are written they are published, again on the pool. A document whose
// publish fails counts as failed.
func (c *Converter) Batch(ctx context.Context, locations []string) BatchResult {
	stems := uniqueStems(locations)

	opts := concurrency.DefaultOptions()
	if c.opts.Workers > 0 {
		opts.MaxWorkers = c.opts.Workers
	}

	outs, errs := concurrency.ProcessParallel(ctx, locations, opts, func(ctx context.Context, i int, location string) (*Output, error) {
		out, err := c.document(ctx, location, stems[i])
		if err != nil {
			c.log.Error("conversion failed", "source", location, "error", err)
		}
		return out, err
	})

	res := BatchResult{Outputs: outs, Errors: make([]error, len(locations))}
	var written []int
	for i := range locations {
		if errs != nil && errs[i] != nil {
			res.Errors[i] = errs[i]
			continue
		}
		if outs[i] != nil {
			written = append(written, i)
		}
	}

	if c.opts.Publisher != nil && len(written) > 0 {
		// Each job writes only its own slot of res.Errors.
		failed := concurrency.ForEach(ctx, written, opts, func(ctx context.Context, _ int, i int) error {
			err := c.publish(ctx, outs[i])
			if err != nil {
				c.log.Error("publish failed", "source", locations[i], "error", err)
				res.Errors[i] = err
			}
			return err
		})
		if len(failed) > 0 {
			c.log.Warn("some outputs were not published", "failed", len(failed), "written", len(written))
		}
	}

	for i := range locations {
		if res.Errors[i] != nil {
			res.Outputs[i] = nil
			res.Failed++
			continue
		}
		if outs[i] != nil {
			res.Total.Add(outs[i].Result.Summary)
			res.Diagnostics.Merge(outs[i].Result.Diagnostics)
		}
	}

	c.log.Info("batch done",
		"documents", len(locations),
		"failed", res.Failed,
		"summary", res.Total.String(),
	)
	return res
}

// uniqueStems names outputs after their inputs, numbering repeats so two
// documents never write the same file.
func uniqueStems(locations []string) []string {
	used := map[string]bool{}
	out := make([]string, len(locations))
	for i, loc := range locations {
		base := source.Stem(loc)
		stem := base
		for n := 2; used[stem]; n++ {
			stem = base + "-" + strconv.Itoa(n)
		}
		used[stem] = true
		out[i] = stem
	}
	return out
}
