package apply

import "github.com/signadot/redline/docengine"

// Options configures one run.
type Options struct {
	// FailFast aborts the run on any blocking validation issue
	// instead of applying the valid subset.
	FailFast bool
	// Strict promotes validation warnings to blocking.
	Strict bool
	// AllowShortening suppresses the text-reduction warning.
	AllowShortening bool
	// Export configures the final export call, including scoped
	// diagnostic suppression.
	Export docengine.ExportOptions
}
