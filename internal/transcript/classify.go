package transcript

import (
	"regexp"
	"strings"
)

// LineKind is the category a raw subtitle line falls into
type LineKind int

const (
	Content LineKind = iota
	Header
	CueTiming
	Blank
)

func (k LineKind) String() string {
	switch k {
	case Header:
		return "header"
	case CueTiming:
		return "cue-timing"
	case Blank:
		return "blank"
	default:
		return "content"
	}
}

const bom = "\uFEFF"

var (
	// WEBVTT, optionally followed by a space or tab and a title
	reSignature = regexp.MustCompile(`^WEBVTT(?:[ \t].*)?$`)
	reCueIndex  = regexp.MustCompile(`^\d+$`)
	// [hh:]mm:ss.mmm --> [hh:]mm:ss.mmm, then end of line or cue settings
	reCueTiming = regexp.MustCompile(`^(?:\d{2,}:)?\d{2}:\d{2}\.\d{3}[ \t]+-->[ \t]+(?:\d{2,}:)?\d{2}:\d{2}\.\d{3}(?:[ \t].*)?$`)
)

// Classify returns the kind of a single raw line. Anything that is not a
// signature, cue index, cue timing or blank line is Content.
func Classify(line string) LineKind {
	line = strings.TrimSuffix(line, "\r")
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, bom))

	switch {
	case trimmed == "":
		return Blank
	case isSignature(line):
		return Header
	case reCueIndex.MatchString(trimmed):
		return Header
	case reCueTiming.MatchString(trimmed):
		return CueTiming
	default:
		return Content
	}
}

func isSignature(line string) bool {
	return reSignature.MatchString(strings.TrimRight(strings.TrimPrefix(line, bom), " \t\r"))
}
