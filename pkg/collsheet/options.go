// Package collsheet extracts active collection jobs from collection-level sheets.
package collsheet

import (
	"github.com/ukaji3/collsheet-go/pkg/collsheet/parser"
	"go.uber.org/zap"
)

// DefaultSheetName is the worksheet holding collection-level rows.
const DefaultSheetName = "At Collection Level"

// Options configures job extraction.
type Options struct {
	// IDFilter restricts jobs to these collection ids.
	// If nil, every active row is returned.
	IDFilter parser.IDSet
	// Logger receives parse anomalies and progress messages.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
