// Package model defines the data types shared by the textutils engine.
package model

// SourceName identifies one named origin of bytes: either a filesystem path
// or the reserved placeholder "-" meaning standard input.
type SourceName string

// Stdin is the placeholder name that binds a source to standard input.
const Stdin SourceName = "-"

// IsStdin reports whether the name refers to standard input.
func (n SourceName) IsStdin() bool {
	return n == Stdin
}

// Label returns the name as it appears in per-source output rows. Standard
// input is unlabeled by convention.
func (n SourceName) Label() string {
	if n.IsStdin() {
		return ""
	}

	return string(n)
}
