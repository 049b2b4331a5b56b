// Package document extracts plain text from uploaded resume files.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("only PDF files are supported")
	ErrUnreadablePDF     = errors.New("failed to extract PDF text")
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	blankLines      = regexp.MustCompile(`\n{2,}`)
)

// IsPDF reports whether filename has a .pdf extension (any case).
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// ExtractText returns the plain text of a supported document.
func ExtractText(filename string, data []byte) (string, error) {
	if !IsPDF(filename) {
		return "", ErrUnsupportedFormat
	}
	return ExtractPDF(data)
}

// ExtractPDF returns the text of every page joined by newlines.
func ExtractPDF(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		// Font resources are page-scoped; nil lets each page resolve its own.
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, i, err)
		}
		pages = append(pages, s)
	}

	return NormalizeWhitespace(strings.Join(pages, "\n")), nil
}

// NormalizeWhitespace collapses runs of horizontal whitespace and blank lines.
func NormalizeWhitespace(s string) string {
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
