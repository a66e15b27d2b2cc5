// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmltree"
	"golang.org/x/net/html"
)

// Ensure LoggingExtractor implements htmltree.Extractor.
var _ htmltree.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for extraction
// outcomes.
type LoggingExtractor struct {
	next   htmltree.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next htmltree.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc *html.Node, opts htmltree.Options) (*htmltree.Result, error) {
	begin := time.Now()
	result, err := e.next.Extract(doc, opts)
	if err != nil {
		e.logger.Error("extraction failed",
			"code", htmltree.ErrorCode(err),
			"message", htmltree.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"nodes", len(result.Nodes),
		"diagnostics", len(result.Diagnostics),
		"aggressive", result.Aggressive,
		"duration", time.Since(begin),
	)
	return result, nil
}
