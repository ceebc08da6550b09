// Command seedcatalog converts the furniture catalog Excel file into a SQL seed file.
// Expects a Catalog sheet with columns: model, material, height_cm, width_cm, depth_cm, base_rate.
// Usage: go run ./cmd/seedcatalog
// Output: db/seeds/catalog_items.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 200

type catalogEntry struct {
	model    string
	material string
	heightCm float64
	widthCm  float64
	depthCm  float64
	baseRate float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "Aravalli Furniture Catalog.xlsx"
	outPath := "db/seeds/catalog_items.sql"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseCatalogSheet(f)
	if err != nil {
		return fmt.Errorf("parse catalog sheet: %w", err)
	}
	log.Printf("catalog sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Furniture catalog seed data generated from Excel.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-catalog",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

func parseCatalogSheet(f *excelize.File) ([]catalogEntry, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	seen := make(map[string]bool)
	var entries []catalogEntry
	for i, row := range rows[1:] {
		if len(row) < 6 {
			continue
		}
		model := strings.TrimSpace(row[0])
		material := strings.TrimSpace(row[1])
		if model == "" || material == "" {
			continue
		}
		key := model + "|" + material
		if seen[key] {
			log.Printf("row %d: duplicate %s, skipping", i+2, key)
			continue
		}
		seen[key] = true

		height, err := parseNum(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: height: %w", i+2, err)
		}
		width, err := parseNum(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: width: %w", i+2, err)
		}
		depth, err := parseNum(row[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: depth: %w", i+2, err)
		}
		rate, err := parseNum(row[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: base_rate: %w", i+2, err)
		}

		entries = append(entries, catalogEntry{
			model:    model,
			material: material,
			heightCm: height,
			widthCm:  width,
			depthCm:  depth,
			baseRate: rate,
		})
	}
	return entries, nil
}

func parseNum(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func writeBatch(out *os.File, batch []catalogEntry) error {
	if len(batch) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("INSERT INTO catalog_items (model, material, height_cm, width_cm, depth_cm, base_rate) VALUES\n")
	for i, e := range batch {
		sep := ","
		if i == len(batch)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "('%s', '%s', %g, %g, %g, %g)%s\n",
			sqlEscape(e.model), sqlEscape(e.material), e.heightCm, e.widthCm, e.depthCm, e.baseRate, sep)
	}
	b.WriteString("ON CONFLICT (model, material) DO UPDATE SET height_cm = EXCLUDED.height_cm, width_cm = EXCLUDED.width_cm, depth_cm = EXCLUDED.depth_cm, base_rate = EXCLUDED.base_rate, updated_at = NOW();\n")
	_, err := out.WriteString(b.String())
	return err
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
