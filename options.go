package stylus

import "github.com/tsawler/stylus/model"

// analyzeOptions holds configuration for analysis passes.
type analyzeOptions struct {
	// Selection scope for statistics
	selection    model.Selection
	hasSelection bool
}

// defaultOptions returns the default analysis options.
func defaultOptions() analyzeOptions {
	return analyzeOptions{
		selection:    model.Selection{},
		hasSelection: false,
	}
}

// clone creates a copy of analyzeOptions.
func (o analyzeOptions) clone() analyzeOptions {
	return analyzeOptions{
		selection:    o.selection,
		hasSelection: o.hasSelection,
	}
}
