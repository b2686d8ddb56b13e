package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetSpec describes one sheet: a header row followed by data rows.
type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]interface{}
}

// BuildWorkbook renders the sheets into an xlsx file. The first spec replaces
// the default sheet.
func BuildWorkbook(sheets ...SheetSpec) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("new header style: %w", err)
	}

	for i, s := range sheets {
		name := sheetName(s.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet: %w", err)
		}

		header := make([]interface{}, len(s.Header))
		for c, h := range s.Header {
			header[c] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			row := row
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return nil, fmt.Errorf("set row %d: %w", r+2, err)
			}
		}

		if len(s.Header) > 0 {
			end, _ := excelize.CoordinatesToCellName(len(s.Header), 1)
			_ = f.SetCellStyle(name, "A1", end, bold)
			_ = f.AutoFilter(name, "A1:"+end, nil)
		}
		setColumnWidths(f, name, s)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// setColumnWidths sizes columns from the header and the first 50 rows.
func setColumnWidths(f *excelize.File, sheet string, s SheetSpec) {
	for c := range s.Header {
		longest := len([]rune(s.Header[c]))
		for r := 0; r < len(s.Rows) && r < 50; r++ {
			if c < len(s.Rows[r]) {
				if l := len([]rune(fmt.Sprint(s.Rows[r][c]))); l > longest {
					longest = l
				}
			}
		}
		w := float64(longest) * 1.1
		if w < 12 {
			w = 12
		}
		if w > 50 {
			w = 50
		}
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}
}

var invalidSheetRe = regexp.MustCompile(`[\\/:*?\[\]]+`)

// sheetName strips characters excel rejects and applies the 31 rune limit.
func sheetName(title string, i int) string {
	name := strings.TrimSpace(invalidSheetRe.ReplaceAllString(title, " "))
	if name == "" {
		name = fmt.Sprintf("Sheet%d", i+1)
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|]+`)

// FileName builds a safe "<base>_<suffix>.xlsx" attachment name.
func FileName(base, suffix string) string {
	name := strings.Join(strings.Fields(base+"_"+suffix), "_")
	return invalidFileRe.ReplaceAllString(name, "_") + ".xlsx"
}

