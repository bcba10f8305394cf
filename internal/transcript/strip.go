package transcript

import "regexp"

// An unterminated tag runs to the end of the line.
var reTag = regexp.MustCompile(`<[^>]*(?:>|$)`)

// StripTags removes inline markup such as <b>, <i>, <c.yellow> or
// <00:00:01.000> and keeps the surrounding text exactly as it was.
// A '<' without a closing '>' is treated as an open tag, so it and the
// rest of the line are dropped.
func StripTags(line string) string {
	return reTag.ReplaceAllString(line, "")
}
