package vocabulary

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SMARToolReader reads the SMARTool export CSV (comma separated, one row per
// inflected form). Rows sharing a lemma collapse into a single Word.
type SMARToolReader struct {
	path string
}

// NewSMARToolReader creates a reader for the given CSV file.
func NewSMARToolReader(path string) *SMARToolReader {
	return &SMARToolReader{path: path}
}

// Read extracts the unique words. Malformed or incomplete rows are skipped,
// never failing the whole read.
func (r *SMARToolReader) Read() ([]Word, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv.Reader.Read(header) > %w", err)
	}
	columns := columnIndex(header)

	var words []Word
	seen := map[string]bool{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Debug("skipping malformed CSV row", "path", r.path, "error", err)
			continue
		}

		lemma := columns.get(row, "Target language lemma")
		gloss := columns.get(row, "English gloss")
		if gloss == "" {
			gloss = columns.get(row, "User language gloss")
		}
		if lemma == "" || gloss == "" {
			continue
		}
		if strings.EqualFold(lemma, "deleted") || strings.EqualFold(gloss, "deleted") {
			continue
		}
		if seen[lemma] {
			continue
		}
		seen[lemma] = true

		word := Word{
			Russian: lemma,
			English: gloss,
			POS:     columns.get(row, "POS"),
			Level:   columns.get(row, "Level"),
		}
		if strings.HasPrefix(word.POS, "V") {
			word.Aspect = aspectFromAnalysis(columns.get(row, "Analysis"))
		}
		words = append(words, word)
	}

	slog.Debug("extracted vocabulary", "path", r.path, "unique_words", len(words))
	return words, nil
}

// aspectFromAnalysis derives the verb aspect from the Analysis column.
func aspectFromAnalysis(analysis string) string {
	lowered := strings.ToLower(analysis)
	switch {
	case strings.Contains(lowered, "imperf"):
		return AspectImperfective
	case strings.Contains(lowered, "perf"):
		return AspectPerfective
	default:
		return AspectUnknown
	}
}

// NorwegianReader reads the Russian-Norwegian word list CSV (semicolon
// separated, columns "russisk" and "norsk").
type NorwegianReader struct {
	path string
}

// NewNorwegianReader creates a reader for the given CSV file.
func NewNorwegianReader(path string) *NorwegianReader {
	return &NorwegianReader{path: path}
}

// Read extracts the word pairs. Verbs are recognized by the "å " infinitive
// particle and their aspect by the trailing "(perfektiv)"/"(imperfektiv)"
// markers.
func (r *NorwegianReader) Read() ([]Word, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", r.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv.Reader.Read(header) > %w", err)
	}
	columns := columnIndex(header)

	var words []Word
	seen := map[string]bool{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Debug("skipping malformed CSV row", "path", r.path, "error", err)
			continue
		}

		russian := columns.get(row, "russisk")
		norwegian := columns.get(row, "norsk")
		if russian == "" || norwegian == "" {
			continue
		}
		if seen[russian] {
			continue
		}
		seen[russian] = true

		word := Word{
			Russian:   russian,
			Norwegian: norwegian,
		}
		if strings.HasPrefix(norwegian, "å ") {
			word.POS = "V"
			word.Aspect = aspectFromNorwegian(norwegian)
		}
		words = append(words, word)
	}

	slog.Debug("extracted vocabulary", "path", r.path, "unique_words", len(words))
	return words, nil
}

func aspectFromNorwegian(norwegian string) string {
	lowered := strings.ToLower(norwegian)
	switch {
	case strings.Contains(lowered, "(perfektiv)"):
		return AspectPerfective
	case strings.Contains(lowered, "(imperfektiv)"):
		return AspectImperfective
	default:
		return AspectUnknown
	}
}

type columnIndexMap map[string]int

func columnIndex(header []string) columnIndexMap {
	columns := columnIndexMap{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func (c columnIndexMap) get(row []string, name string) string {
	index, ok := c[name]
	if !ok || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
