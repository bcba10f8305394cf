package transcript

import (
	"regexp"
	"strings"
)

// NOTE, STYLE and REGION open blocks that carry no spoken text
var reNonCueBlock = regexp.MustCompile(`^(?:NOTE|STYLE|REGION)(?:[ \t].*)?$`)

// Assemble turns the raw lines of one subtitle document into transcript
// lines: timing, signature, cue indexes, blank lines and markup are
// dropped, the rest is trimmed and consecutive duplicates are collapsed.
//
// When the document opens with the WEBVTT signature, its header block,
// NOTE/STYLE/REGION blocks and cue identifiers are skipped as well. Such a
// block ends at a blank line or at the next cue timing line.
// Plain text input goes through line by line, so Assemble is idempotent.
func Assemble(lines []string) []string {
	var (
		out       []string
		dedup     Deduplicator
		signature = signatureIndex(lines)
		skipping  bool
		newBlock  = true
	)

	for i, raw := range lines {
		kind := Classify(raw)
		if kind == Blank {
			skipping = false
			newBlock = true
			continue
		}

		blockStart := newBlock
		newBlock = false
		// NOTE text cannot contain "-->", so a timing line always opens a cue
		if kind == CueTiming {
			skipping = false
		}
		if skipping {
			continue
		}

		if signature >= 0 && blockStart {
			if i == signature || reNonCueBlock.MatchString(strings.TrimRight(raw, " \t\r")) {
				skipping = true
				continue
			}
			if kind == Content && i+1 < len(lines) && Classify(lines[i+1]) == CueTiming {
				continue // cue identifier
			}
		}

		if kind != Content {
			continue
		}

		text := strings.TrimSpace(StripTags(raw))
		if Classify(text) != Content {
			continue
		}
		if dedup.Apply(text) {
			out = append(out, text)
		}
	}

	return out
}

// signatureIndex returns the index of the WEBVTT line when it is the first
// non-blank line of the document, -1 otherwise.
func signatureIndex(lines []string) int {
	for i, line := range lines {
		switch Classify(line) {
		case Blank:
			continue
		case Header:
			if isSignature(line) {
				return i
			}
		}
		return -1
	}
	return -1
}
