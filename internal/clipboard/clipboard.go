package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard. An empty text is refused so a
// silent transcript does not wipe whatever the user had copied.
func Copy(text string) error {
	if text == "" {
		return errors.New("nothing to copy: transcript is empty")
	}
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
