package converter

import (
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// writeDocx saves the transcript as a Word document titled after the input
// file, one paragraph per line or a single paragraph when join is set.
func writeDocx(dest, inputPath string, lines []string, join bool) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	paragraphs := lines
	if join && len(lines) > 0 {
		paragraphs = []string{strings.Join(lines, " ")}
	}
	for _, text := range paragraphs {
		doc.AddParagraph("").AddText(text).Font(fontName).Size(fontSize).Color("000000")
	}

	return writeAtomic(dest, doc.SaveTo)
}
