package slog

import (
	"context"
	"log/slog"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
)

// Ensure LoggingGenerator implements listicle.Generator.
var _ listicle.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with call logging.
type LoggingGenerator struct {
	next   listicle.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next listicle.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (markdown string, err error) {
	defer func(begin time.Time) {
		var modes []listicle.Mode
		if req != nil {
			modes = req.Modes
		}
		g.logger.Info("generate listicle",
			"modes", modes,
			"chars", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, brief, req)
}

// Ensure LoggingHeadlineGenerator implements listicle.HeadlineGenerator.
var _ listicle.HeadlineGenerator = (*LoggingHeadlineGenerator)(nil)

// LoggingHeadlineGenerator wraps a HeadlineGenerator with call logging.
type LoggingHeadlineGenerator struct {
	next   listicle.HeadlineGenerator
	logger *slog.Logger
}

// NewLoggingHeadlineGenerator creates a new LoggingHeadlineGenerator.
func NewLoggingHeadlineGenerator(next listicle.HeadlineGenerator, logger *slog.Logger) *LoggingHeadlineGenerator {
	return &LoggingHeadlineGenerator{next: next, logger: logger}
}

// Headlines delegates to the wrapped generator and logs the operation.
func (g *LoggingHeadlineGenerator) Headlines(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (options []listicle.HeadlineOption, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate headlines",
			"count", len(options),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Headlines(ctx, brief, req)
}
