package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"deliverect/internal"
)

// ExportOrdersCSV writes the order-level dataset to a CSV file.
func ExportOrdersCSV(rows []internal.OrderRecord, outputPath string) error {
	cells := make([][]string, 0, len(rows))
	for _, rec := range rows {
		cells = append(cells, orderCells(rec))
	}
	return writeCSV(orderHeaders, cells, outputPath)
}

// ExportItemsCSV writes the item-level dataset to a CSV file.
func ExportItemsCSV(rows []internal.ItemRecord, outputPath string) error {
	cells := make([][]string, 0, len(rows))
	for _, rec := range rows {
		cells = append(cells, itemCells(rec))
	}
	return writeCSV(itemHeaders, cells, outputPath)
}

// ExportOrdersXLSX writes the order-level dataset to an XLSX workbook.
func ExportOrdersXLSX(rows []internal.OrderRecord, outputPath string) error {
	cells := make([][]string, 0, len(rows))
	for _, rec := range rows {
		cells = append(cells, orderCells(rec))
	}
	return writeXLSX(orderHeaders, cells, outputPath)
}

// ExportItemsXLSX writes the item-level dataset to an XLSX workbook.
func ExportItemsXLSX(rows []internal.ItemRecord, outputPath string) error {
	cells := make([][]string, 0, len(rows))
	for _, rec := range rows {
		cells = append(cells, itemCells(rec))
	}
	return writeXLSX(itemHeaders, cells, outputPath)
}

func writeCSV(headers []string, rows [][]string, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

func writeXLSX(headers []string, rows [][]string, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
