// internal/export/export.go
// Package export writes finished run records to JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mwiater/tachos/internal/record"
)

// resultsDir is where verbose comparison logs are collected.
var resultsDir = filepath.Join("tachosData", "comparisons")

// Write writes the record to a timestamped file under the results
// directory and returns the path.
func Write(rec record.Record) (string, error) {
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating results directory: %w", err)
	}

	name := fmt.Sprintf("%s-vs-%s-%s.json",
		Slugify(rec.First.Label),
		Slugify(rec.Second.Label),
		rec.Timestamp.Format("20060102_150405"))
	path := filepath.Join(resultsDir, name)

	if err := writeTo(rec, path); err != nil {
		return "", err
	}
	log.Printf("Comparison results written to %s", path)
	return path, nil
}

// WriteTo writes the record to a caller-chosen path. Relative paths are
// resolved into the results directory, matching where the verbose log goes.
func WriteTo(rec record.Record, path string) error {
	if !filepath.IsAbs(path) {
		if err := os.MkdirAll(resultsDir, 0o755); err != nil {
			return fmt.Errorf("error creating results directory: %w", err)
		}
		path = filepath.Join(resultsDir, path)
	}
	if err := writeTo(rec, path); err != nil {
		return err
	}
	log.Printf("Exported detailed results to %s", path)
	return nil
}

func writeTo(rec record.Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating result file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("error writing results to file: %w", err)
	}
	return nil
}

// Slugify converts a string into a "slug" format,
// including replacing colons (:) with underscores (_).
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "_")
	re := regexp.MustCompile(`[^a-z0-9_]+`)
	s = re.ReplaceAllString(s, "-")
	s = regexp.MustCompile(`-+`).ReplaceAllString(s, "-")
	s = strings.Trim(s, "-_")

	return s
}
