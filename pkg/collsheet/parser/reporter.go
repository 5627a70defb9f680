// Package parser interprets collection sheet grids and operator-supplied
// collection id lists.
package parser

import "go.uber.org/zap"

// Reporter receives anomalies found while parsing. *zap.Logger satisfies it.
type Reporter interface {
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return zap.NewNop()
	}
	return r
}
