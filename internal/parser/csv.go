package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor handles CSV files by flattening rows into "header: value"
// sentences, which gives the question synthesizers something to work with.
type CSVExtractor struct{}

func (p *CSVExtractor) Extract(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	// First row is headers.
	headers := records[0]

	var lines []string
	for _, row := range records[1:] {
		var cells []string
		for j, cell := range row {
			if j < len(headers) {
				cells = append(cells, headers[j]+": "+cell)
			} else {
				cells = append(cells, cell)
			}
		}
		lines = append(lines, strings.Join(cells, ", ")+".")
	}

	return strings.Join(lines, " "), nil
}
