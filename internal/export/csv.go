package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// BOM is written first so spreadsheet tools on Windows detect UTF-8, which
// Marathi owner names need.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV renders the register as CSV.
func WriteCSV(w io.Writer, r *Register) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, row := range Rows(r) {
		if err := cw.Write(csvRecord(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		switch v := cell.(type) {
		case string:
			out[i] = v
		case int:
			out[i] = strconv.Itoa(v)
		case int64:
			out[i] = strconv.FormatInt(v, 10)
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return out
}
