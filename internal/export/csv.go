// Package export renders stored readings as CSV downloads.
package export

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// AllFilename is the attachment name for a full-table export.
const AllFilename = "all_air_data.csv"

// CityFilename returns the attachment name for a single-city export. Characters
// that would break a Content-Disposition header or a file path are replaced.
func CityFilename(city string) string {
	r := strings.NewReplacer(`/`, "_", `\`, "_", `"`, "_", "\r", "_", "\n", "_")
	return r.Replace(city) + "_data.csv"
}

// WriteRows streams a query result as CSV, using the result's column names as
// the header. Fields are quoted as needed, so embedded commas, quotes and
// newlines survive a round trip. It returns the number of data rows written.
// rows is closed.
func WriteRows(w io.Writer, rows *sql.Rows) (int, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("export: columns: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return 0, fmt.Errorf("export: write header: %w", err)
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	record := make([]string, len(cols))

	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return n, fmt.Errorf("export: scan row %d: %w", n, err)
		}
		for i, v := range values {
			record[i] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return n, fmt.Errorf("export: write row %d: %w", n, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("export: iterate rows: %w", err)
	}
	cw.Flush()
	return n, cw.Error()
}

// FormatValue converts a scanned column value to its CSV text. NULL becomes an
// empty field.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
