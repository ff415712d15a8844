package geochron

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTable reads a sample table from a CSV file with a
// "group,age,uncertainty" header. Column order is fixed; extra columns are
// rejected so a mis-exported spreadsheet fails loudly instead of silently
// plotting garbage.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample table: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}

// ReadTable parses a sample table from r. See LoadTable for the format.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read sample table header: %w", err)
	}
	if len(header) != 3 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "group") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "age") ||
		!strings.EqualFold(strings.TrimSpace(header[2]), "uncertainty") {
		return nil, fmt.Errorf("sample table header must be group,age,uncertainty, got %q", strings.Join(header, ","))
	}

	var table Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sample table line %d: %w", line, err)
		}

		age, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad age %q: %w", line, rec[1], err)
		}
		unc, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad uncertainty %q: %w", line, rec[2], err)
		}

		table = append(table, Sample{
			Group:       strings.TrimSpace(rec[0]),
			Age:         age,
			Uncertainty: unc,
		})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
