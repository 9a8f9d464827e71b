package model

// Counts holds the running aggregates for one source, or for a whole run
// when used as the totals instance. Totals are maintained incrementally by
// folding per-source instances in, never by re-scanning.
type Counts struct {
	Lines int
	Words int
	Bytes int
	Chars int
}

// Add folds other into c.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
	c.Chars += other.Chars
}

// CountKinds selects which aggregates are active for a count run.
type CountKinds struct {
	Lines bool
	Words bool
	Bytes bool
	Chars bool
}

// None reports whether no kind has been selected.
func (k CountKinds) None() bool {
	return !k.Lines && !k.Words && !k.Bytes && !k.Chars
}

// Normalize returns the effective selection: when the caller picked nothing
// the traditional default of lines, words and bytes applies.
func (k CountKinds) Normalize() CountKinds {
	if k.None() {
		return CountKinds{Lines: true, Words: true, Bytes: true}
	}

	return k
}
