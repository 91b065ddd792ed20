package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel creates an Excel file under ./public/files from tabular data.
// Returns the path of the written file.
func GenerateExcel(rows [][]interface{}, taskName string, headers []string) (string, error) {
	dirPath := "./public/files"
	if err := EnsureDirectoryExists(filepath.Join(dirPath, "placeholder")); err != nil {
		return "", fmt.Errorf("failed to ensure directory exists: %v", err)
	}

	f := excelize.NewFile()
	sheetName := "Sheet1"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error resolving header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error writing header: %v", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return "", fmt.Errorf("error resolving cell: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error writing cell: %v", err)
			}
		}
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", taskName, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(dirPath, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving excel file: %v", err)
	}

	return filePath, nil
}
