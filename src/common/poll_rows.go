package common

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadPollRows reads the first sheet of the workbook at path. The first row
// is the header; every following row becomes a PollRow keyed by header label.
// Files ending in .csv are read as CSV with the same header rule.
//
// A path that does not exist fails with ErrFileNotFound, anything else that
// stops the file from being read fails with ErrParse.
func LoadPollRows(path string) ([]PollRow, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newFileNotFoundError("stat "+path, err)
		}
		return nil, newParseError("stat "+path, err)
	}

	var records [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		records, err = readCSVRecords(path)
	} else {
		records, err = readWorkbookRecords(path)
	}
	if err != nil {
		return nil, err
	}
	return rowsFromRecords(records), nil
}

func readWorkbookRecords(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newParseError("open workbook "+path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newParseError("no sheets in "+path, nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, newParseError("rows of sheet "+sheets[0], err)
	}
	return rows, nil
}

func readCSVRecords(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newParseError("open "+path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	records, err := reader.ReadAll()
	if err != nil {
		return nil, newParseError("read CSV "+path, err)
	}
	return records, nil
}

// rowsFromRecords turns raw records into rows. records[0] is the header, so
// records[i] sits on sheet row i+1 and data row i-1 is reported as i+1.
func rowsFromRecords(records [][]string) []PollRow {
	if len(records) == 0 {
		return []PollRow{}
	}

	// First occurrence wins for duplicated labels
	headerIdx := make(map[string]int)
	for i, header := range records[0] {
		label := strings.TrimSpace(header)
		if label == "" {
			continue
		}
		if _, exists := headerIdx[label]; !exists {
			headerIdx[label] = i
		}
	}

	rows := make([]PollRow, 0, len(records)-1)
	for i, record := range records[1:] {
		cells := make(map[string]string, len(headerIdx))
		for label, idx := range headerIdx {
			if idx < len(record) {
				cells[label] = record[idx]
			}
		}
		rows = append(rows, PollRow{Number: i + 2, Cells: cells})
	}
	return rows
}
