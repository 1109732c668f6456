package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// decodeXLSXCatalog har bir kategoriya alohida sheet ("CPU", "Motherboard", ...).
// The first row is the header; unknown sheets and columns are ignored.
func decodeXLSXCatalog(data []byte) (*entity.Catalog, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	catalog := &entity.Catalog{}
	found := 0
	for _, sheet := range f.GetSheetList() {
		cat, ok := entity.ParseCategory(sheet)
		if !ok {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		parts, err := partsFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		catalog.SetParts(cat, append(catalog.Parts(cat), parts...))
		found++
	}
	if found == 0 {
		return nil, fmt.Errorf("no category sheets in workbook")
	}
	return catalog, nil
}

func partsFromRows(rows [][]string) ([]entity.Part, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	nameCol, priceCol := -1, -1
	fieldCols := map[int]int{}
	for i, h := range rows[0] {
		key := headerKey(h)
		switch key {
		case headerName:
			nameCol = i
		case headerPrice:
			priceCol = i
		default:
			if idx, ok := fieldByHeader[key]; ok {
				fieldCols[i] = idx
			}
		}
	}
	if nameCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("header needs name and price columns")
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var parts []entity.Part
	for r, row := range rows[1:] {
		name := cell(row, nameCol)
		if name == "" {
			continue
		}
		price, err := parsePrice(cell(row, priceCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, err)
		}
		p := entity.Part{Name: name, Price: price}
		for col, idx := range fieldCols {
			*partFields[idx].ref(&p) = cell(row, col)
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func encodeXLSXCatalog(catalog *entity.Catalog) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	first := f.GetSheetName(0)
	for i, cat := range entity.AllCategories {
		parts := catalog.Parts(cat)
		if cat == entity.CategoryOS && len(parts) == 0 {
			continue
		}
		sheet := string(cat)
		if i == 0 {
			if err := f.SetSheetName(first, sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		fields := usedFields(parts)
		header := []interface{}{headerName, headerPrice}
		for _, fld := range fields {
			header = append(header, fld.label)
		}
		if err := setRow(f, sheet, 1, header); err != nil {
			return nil, err
		}
		for i := range parts {
			values := []interface{}{parts[i].Name, parts[i].Price}
			for _, fld := range fields {
				values = append(values, *fld.ref(&parts[i]))
			}
			if err := setRow(f, sheet, i+2, values); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportResultXLSX natijani bitta sheet ga yozish: parts, totals, warnings
func ExportResultXLSX(result *entity.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nil result")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Build"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Category", "Name", "Price"},
	}
	for _, cat := range entity.AllCategories {
		if p := result.Recommendations.Get(cat); p != nil {
			rows = append(rows, []interface{}{string(cat), p.Name, p.Price})
		}
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Total", "", result.TotalPrice},
		[]interface{}{"Grand total", "", result.GrandTotal},
		[]interface{}{"Budget", "", result.Budget},
		[]interface{}{"Remaining", "", result.RemainingBudget},
		[]interface{}{"Status", string(result.BudgetStatus), result.Overage},
		[]interface{}{"Usage", result.Usage},
		[]interface{}{"ID", result.ID},
	)
	for _, w := range result.Warnings {
		rows = append(rows, []interface{}{"Warning", w})
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheet, "B", "B", 48)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
