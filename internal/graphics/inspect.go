package graphics

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// Inspect opens the PDF at path and returns its page count. A file that
// cannot be parsed as a PDF returns an error; callers treat that as a
// warning, not a failure.
func Inspect(path string) (int, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return reader.NumPage(), nil
}
