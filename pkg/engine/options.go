package engine

import (
	"github.com/rs/zerolog"
)

type Options struct {
	// Depth is the default search depth for callers that take it from options.
	Depth int
	// SimplifiedExtension searches one or two plies deeper when the root
	// has few legal moves or few pieces left.
	SimplifiedExtension bool
	// ProgressMinNodes delays progress callbacks until this many nodes.
	ProgressMinNodes int
	Logger           zerolog.Logger
}

func NewOptions() Options {
	return Options{
		Depth:               5,
		SimplifiedExtension: true,
		ProgressMinNodes:    0,
		Logger:              zerolog.Nop(),
	}
}
