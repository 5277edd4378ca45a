package corpus

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sentiscale/sentiscale/schema"
)

const maxLineSize = 16 * 1024 * 1024

// readJSONL decodes one JSON object per line
func (l *Loader) readJSONL(data []byte) ([]schema.Document, error) {
	var documents []schema.Document
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var record map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		doc, err := l.document(record, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		documents = append(documents, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return documents, nil
}

// readCSV decodes a header-prefixed CSV table
func (l *Loader) readCSV(data []byte) ([]schema.Document, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return l.tabular(rows)
}

// readXLSX decodes the first sheet of an xlsx workbook
func (l *Loader) readXLSX(data []byte) ([]schema.Document, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return l.tabular(rows)
}

// tabular decodes header-prefixed rows shared by the csv and xlsx readers
func (l *Loader) tabular(rows [][]string) ([]schema.Document, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := map[string]int{}
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, column string) string {
		i, ok := header[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var documents []schema.Document
	for n, row := range rows[1:] {
		date, err := l.parseDate(cell(row, l.options.DateField))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		id := cell(row, l.options.IDField)
		if id == "" {
			id = "text" + strconv.Itoa(n+1)
		}
		documents = append(documents, schema.Document{
			ID:   id,
			Text: cell(row, l.options.TextField),
			Date: date,
		})
	}
	return documents, nil
}

// document builds a schema.Document from a decoded JSON record; keys other
// than id/text/date are preserved as metadata.
func (l *Loader) document(record map[string]interface{}, ordinal int) (schema.Document, error) {
	doc := schema.Document{}
	for key, value := range record {
		switch strings.ToLower(key) {
		case strings.ToLower(l.options.IDField):
			doc.ID = fmt.Sprintf("%v", value)
		case strings.ToLower(l.options.TextField):
			doc.Text, _ = value.(string)
		case strings.ToLower(l.options.DateField):
			raw, _ := value.(string)
			date, err := l.parseDate(raw)
			if err != nil {
				return doc, err
			}
			doc.Date = date
		default:
			if doc.Metadata == nil {
				doc.Metadata = map[string]interface{}{}
			}
			doc.Metadata[key] = value
		}
	}
	if doc.ID == "" {
		doc.ID = "text" + strconv.Itoa(ordinal)
	}
	if doc.Date.IsZero() {
		return doc, ErrMissingDate
	}
	return doc, nil
}

func (l *Loader) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingDate
	}
	date, err := time.Parse(l.options.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMissingDate, err)
	}
	return date, nil
}
