package model

// DisplayOptions carries the display-tool toggles. The three composite
// shorthands (ShowAll, NonprintEnds, NonprintTabs) mirror the classic -A, -e
// and -t flags and are folded into the base toggles by Expand.
type DisplayOptions struct {
	ShowAll      bool // implies ShowNonprinting, ShowEnds, ShowTabs
	NonprintEnds bool // implies ShowNonprinting, ShowEnds
	NonprintTabs bool // implies ShowNonprinting, ShowTabs

	NumberAll       bool
	NumberNonblank  bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonprinting bool
	SqueezeBlank    bool
}

// Expand applies the composite shorthands to the base toggles. It runs once
// before processing begins; per-line code reads only the base toggles.
func (o DisplayOptions) Expand() DisplayOptions {
	if o.ShowAll {
		o.ShowNonprinting = true
		o.ShowEnds = true
		o.ShowTabs = true
	}

	if o.NonprintEnds {
		o.ShowNonprinting = true
		o.ShowEnds = true
	}

	if o.NonprintTabs {
		o.ShowNonprinting = true
		o.ShowTabs = true
	}

	return o
}
