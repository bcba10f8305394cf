package transcript

// Deduplicator suppresses a line equal to the last one it emitted.
// The zero value is ready to use and has emitted nothing.
type Deduplicator struct {
	last    string
	emitted bool
}

// Apply reports whether line should be emitted. State only moves when it is.
func (d *Deduplicator) Apply(line string) bool {
	if d.emitted && d.last == line {
		return false
	}
	d.last = line
	d.emitted = true
	return true
}
