package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	apperrors "github.com/Adithya-Monish-Kumar-K/Headline-Feature-Analytics/pkg/errors"
)

// Load reads the CSV at path and projects the title and category columns,
// located by header name. Any malformed row aborts the load.
func Load(path string, titleColumn string, categoryColumn string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, titleColumn, categoryColumn)
}

// Read parses CSV content from r. The first record must be a header row
// containing both requested columns.
func Read(r io.Reader, titleColumn string, categoryColumn string) (Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.New(apperrors.ErrDatasetEmpty, apperrors.ExitDataset,
			"no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	titleIdx, categoryIdx := -1, -1
	for i, name := range header {
		switch name {
		case titleColumn:
			titleIdx = i
		case categoryColumn:
			categoryIdx = i
		}
	}
	if titleIdx < 0 {
		return nil, apperrors.Newf(apperrors.ErrColumnMissing, apperrors.ExitDataset,
			"column %q not in header", titleColumn)
	}
	if categoryIdx < 0 {
		return nil, apperrors.Newf(apperrors.ErrColumnMissing, apperrors.ExitDataset,
			"column %q not in header", categoryColumn)
	}

	var table Table
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row %d: %w", row+1, err)
		}
		table = append(table, Document{
			Title:    record[titleIdx],
			Category: record[categoryIdx],
		})
		row++
	}

	if len(table) == 0 {
		return nil, apperrors.New(apperrors.ErrDatasetEmpty, apperrors.ExitDataset,
			"no data rows after header")
	}
	return table, nil
}
