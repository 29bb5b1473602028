package extract

import (
	"encoding/xml"
	"strings"
)

// documentBody mirrors the parts of word/document.xml that carry text. Only
// top-level paragraphs and tables are read; nested tables are skipped.
type documentBody struct {
	Paragraphs []paragraph `xml:"body>p"`
	Tables     []table     `xml:"body>tbl"`
}

type table struct {
	Rows []tableRow `xml:"tr"`
}

type tableRow struct {
	Cells []tableCell `xml:"tc"`
}

type tableCell struct {
	Paragraphs []paragraph `xml:"p"`
}

func (c tableCell) text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

type paragraph struct {
	Text string
}

// UnmarshalXML concatenates run text (w:t), including runs inside hyperlinks
// and insertions. Tabs and breaks count only inside a run; a w:tab inside
// paragraph properties is a tab stop, not text.
func (p *paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	stack := []string{start.Name.Local}
	for len(stack) > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if stack[len(stack)-1] == "r" {
				switch t.Name.Local {
				case "tab":
					b.WriteByte('\t')
				case "br", "cr":
					b.WriteByte('\n')
				}
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if stack[len(stack)-1] == "t" {
				b.Write(t)
			}
		}
	}
	p.Text = b.String()
	return nil
}
