package object

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// SniffLen is the number of leading bytes inspected for content detection.
const SniffLen = 3072

// Sniff reads up to SniffLen bytes from r and detects their MIME type. The
// returned reader replays the sniffed prefix followed by the rest of r.
func Sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, SniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	head = head[:n]
	mime := mimetype.Detect(head).String()
	return mime, io.MultiReader(bytes.NewReader(head), r), nil
}
