package apply

// State tracks where an orchestration run is in its lifecycle.  Failed
// is only reachable from Validated, and only when Options.FailFast is
// set; otherwise the run continues with the valid subset.
type State int

const (
	Loaded State = iota
	Validated
	Sorted
	Applying
	Exported
	Failed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Validated:
		return "validated"
	case Sorted:
		return "sorted"
	case Applying:
		return "applying"
	case Exported:
		return "exported"
	case Failed:
		return "failed"
	default:
		return "<unknown state>"
	}
}
