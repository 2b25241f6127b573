package main

import (
	"fmt"
	"log"
	"os"

	importer "TapeLab/internal/calc/premium/importer"
	"TapeLab/internal/tape"
	"github.com/xuri/excelize/v2"
)

// Offline batch evaluator: reads tape configurations from an xlsx sheet and
// writes the computed properties next to them in a new workbook. Same sheet
// layout as the import endpoint.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: batch <input.xlsx> <output.xlsx>")
		os.Exit(2)
	}
	inPath, outPath := os.Args[1], os.Args[2]

	f, err := excelize.OpenFile(inPath)
	if err != nil {
		log.Fatalf("open %s: %v", inPath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Fatalf("read %s: %v", inPath, err)
	}
	if len(rows) < 2 {
		log.Fatalf("%s: no configuration rows", inPath)
	}

	var configs []tape.Config
	skipped := 0
	for i := 1; i < len(rows); i++ {
		cfg, err := importer.ParseRow(rows[i])
		if err != nil {
			skipped++
			continue
		}
		configs = append(configs, cfg)
	}
	if len(configs) == 0 {
		log.Fatalf("%s: no parsable rows", inPath)
	}

	out, err := importer.BuildWorkbook(configs)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	defer out.Close()

	if err := out.SaveAs(outPath); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	log.Printf("Evaluated %d configurations (%d rows skipped) -> %s", len(configs), skipped, outPath)
}
