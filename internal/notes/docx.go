package notes

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// renderDocx writes the compiled notes markdown as a styled docx file.
// The title paragraph comes from the document's own leading heading, so
// the export mirrors the text artifact instead of restating it.
func renderDocx(markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		p := doc.AddParagraph("")
		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			p.AddText(stripInline(m[2])).Font(fontName).Size(headingSize(len(m[1]))).Color("000000").Bold(true)
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			writeInline(p, "• "+m[1])
			continue
		}
		writeInline(p, trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

// writeInline emits a line as interleaved plain and bold runs so that
// **emphasis** in summary text survives the conversion.
func writeInline(p *docx.Paragraph, text string) {
	pos := 0
	for _, span := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if plain := text[pos:span[0]]; plain != "" {
			p.AddText(stripInline(plain)).Font(fontName).Size(fontSize).Color("000000")
		}
		p.AddText(stripInline(text[span[2]:span[3]])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		pos = span[1]
	}
	if rest := text[pos:]; rest != "" {
		p.AddText(stripInline(rest)).Font(fontName).Size(fontSize).Color("000000")
	}
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
