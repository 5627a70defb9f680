package collsheet

import (
	"context"
	"fmt"

	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
	"github.com/ukaji3/collsheet-go/pkg/collsheet/parser"
	"go.uber.org/zap"
)

// GridReader returns the rows of a sheet as text cells.
type GridReader interface {
	ReadGrid(ctx context.Context) ([][]string, error)
}

// FetchCollectionJobs reads the grid once and returns its active collection jobs
// in row order. A sheet without a header row yields no jobs and no error.
func FetchCollectionJobs(ctx context.Context, r GridReader, opts Options) ([]models.CollectionJob, error) {
	log := opts.logger()

	rows, err := r.ReadGrid(ctx)
	if err != nil {
		return nil, NewFetchError(sourceName(r), err)
	}
	log.Debug("read collection sheet", zap.Int("rows", len(rows)))

	jobs := parser.ParseCollectionJobs(rows, opts.IDFilter, log)

	fields := []zap.Field{zap.Int("jobs", len(jobs))}
	if opts.IDFilter != nil {
		fields = append(fields, zap.Ints("collection_id_filter", opts.IDFilter.Sorted()))
	}
	log.Info("parsed collection jobs", fields...)

	return jobs, nil
}

func sourceName(r GridReader) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", r)
}
