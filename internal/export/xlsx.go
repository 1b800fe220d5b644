package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	registerSheet = "Register"
	infoSheet     = "Info"
)

// WriteXLSX renders the register as a workbook with a Register sheet and an
// Info sheet describing the run.
func WriteXLSX(w io.Writer, r *Register) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), registerSheet); err != nil {
		return fmt.Errorf("naming register sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(registerSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetCellStyle(registerSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, row := range Rows(r) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := row
		if err := f.SetSheetRow(registerSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(registerSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if _, err := f.NewSheet(infoSheet); err != nil {
		return fmt.Errorf("creating info sheet: %w", err)
	}
	asOf := "latest"
	if r.AsOf != nil {
		asOf = r.AsOf.Format("2006-01-02")
	}
	info := [][]interface{}{
		{"Village", r.VillageName},
		{"Code", r.VillageCode},
		{"As Of", asOf},
		{"Assessment Year", r.Year},
		{"Generated At", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Properties", len(r.Entries)},
	}
	for i, row := range info {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		values := row
		if err := f.SetSheetRow(infoSheet, cell, &values); err != nil {
			return fmt.Errorf("writing info row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
