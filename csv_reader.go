package hospitalrank

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// columns holds the resolved 0-based indices of the fields of interest.
type columns struct {
	hospital     int
	state        int
	heartAttack  int
	heartFailure int
	pneumonia    int
}

// LoadDataset reads an outcome-of-care CSV file into a Dataset using
// the given schema. The header row is consulted once to resolve column
// positions; every value is kept as text.
func LoadDataset(path string, schema Schema) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	ds, err := readDataset(file, schema)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

func readDataset(r io.Reader, schema Schema) (*Dataset, error) {
	bufReader := bufio.NewReaderSize(r, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	cols := resolveColumns(header, schema)

	ds := &Dataset{}
	rowNum := int64(1)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum+1, err)
		}
		rowNum++

		// Skip empty rows
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}

		ds.Records = append(ds.Records, Record{
			Hospital:         fieldAt(row, cols.hospital),
			State:            fieldAt(row, cols.state),
			HeartAttackRate:  fieldAt(row, cols.heartAttack),
			HeartFailureRate: fieldAt(row, cols.heartFailure),
			PneumoniaRate:    fieldAt(row, cols.pneumonia),
		})
	}

	return ds, nil
}

// resolveColumns maps each schema column to a 0-based index. Header
// names win; the schema's 1-based position is the fallback for files
// whose header text drifted from the CMS wording.
func resolveColumns(header []string, schema Schema) columns {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	resolve := func(c Column) int {
		if i, ok := idx[strings.ToLower(strings.TrimSpace(c.Header))]; ok {
			return i
		}
		return c.Position - 1
	}

	return columns{
		hospital:     resolve(schema.Hospital),
		state:        resolve(schema.State),
		heartAttack:  resolve(schema.HeartAttack),
		heartFailure: resolve(schema.HeartFailure),
		pneumonia:    resolve(schema.Pneumonia),
	}
}

// fieldAt reads one cell, tolerating rows shorter than the resolved
// index. Sanitizes to valid UTF-8 since some exports use Windows-1252.
func fieldAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.ToValidUTF8(strings.TrimSpace(row[i]), "�")
}
