package giga

import "slices"

// RefreshKind is the kind of redraw a RefreshOrder asks for.
// Kinds are ordered from least to most encompassing.
type RefreshKind int

// Refresh kinds.
const (
	RefreshNone RefreshKind = iota
	RefreshCursor
	RefreshStatus
	RefreshLines
	RefreshAll
	RefreshTerminate
)

func (k RefreshKind) String() string {
	switch k {
	case RefreshCursor:
		return "cursor"
	case RefreshStatus:
		return "status"
	case RefreshLines:
		return "lines"
	case RefreshAll:
		return "all"
	case RefreshTerminate:
		return "terminate"
	default:
		return "none"
	}
}

// RefreshOrder describes the minimal redraw needed after an event.
type RefreshOrder struct {
	Kind RefreshKind
	// Lines holds the viewport rows to redraw, sorted and unique.
	// Only set for RefreshLines.
	Lines []int
	// Status asks for the status bar to be redrawn with the lines.
	Status bool
}

// Common orders.
var (
	NoRefresh     = RefreshOrder{Kind: RefreshNone}
	CursorRefresh = RefreshOrder{Kind: RefreshCursor}
	StatusRefresh = RefreshOrder{Kind: RefreshStatus}
	AllRefresh    = RefreshOrder{Kind: RefreshAll}
	Terminate     = RefreshOrder{Kind: RefreshTerminate}
)

// LinesRefresh returns an order redrawing the given viewport rows.
func LinesRefresh(rows ...int) RefreshOrder {
	if len(rows) == 0 {
		return NoRefresh
	}
	lines := slices.Clone(rows)
	slices.Sort(lines)
	return RefreshOrder{Kind: RefreshLines, Lines: slices.Compact(lines)}
}

// Merge combines two orders into one that covers both.
func (o RefreshOrder) Merge(other RefreshOrder) RefreshOrder {
	if o.Kind < other.Kind {
		o, other = other, o
	}
	switch o.Kind {
	case RefreshTerminate, RefreshAll:
		return RefreshOrder{Kind: o.Kind}
	case RefreshLines:
		merged := RefreshOrder{Kind: RefreshLines, Lines: o.Lines, Status: o.Status}
		switch other.Kind {
		case RefreshLines:
			merged = LinesRefresh(append(slices.Clone(o.Lines), other.Lines...)...)
			merged.Status = o.Status || other.Status
		case RefreshStatus:
			merged.Status = true
		}
		return merged
	default:
		// None, cursor and status are each subsumed by the larger kind.
		return o
	}
}

// RedrawsStatus reports whether rendering the order rewrites the status bar.
func (o RefreshOrder) RedrawsStatus() bool {
	switch o.Kind {
	case RefreshStatus, RefreshAll:
		return true
	case RefreshLines:
		return o.Status
	default:
		return false
	}
}
