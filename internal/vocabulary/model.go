// Package vocabulary supplies the practice word universe: CSV ingestion of
// vocabulary sources and a SQLite-backed repository over the imported words.
package vocabulary

import "strings"

// Aspect of a Russian verb.
const (
	AspectPerfective   = "perfective"
	AspectImperfective = "imperfective"
	AspectUnknown      = "unknown"
)

// Word is a single practice item. The Russian lemma is the stable identity:
// the same lemma imported from different sources is the same learning target.
type Word struct {
	Russian   string `db:"russian"`
	English   string `db:"english"`
	Norwegian string `db:"norwegian"`
	POS       string `db:"pos"`
	Level     string `db:"level"`
	Aspect    string `db:"aspect"`
}

// Translation returns the gloss for the given practice direction, falling
// back to the other language when the preferred one is missing.
func (w Word) Translation(norwegian bool) string {
	if norwegian {
		if w.Norwegian != "" {
			return w.Norwegian
		}
		return w.English
	}
	if w.English != "" {
		return w.English
	}
	return w.Norwegian
}

// IsNorwegianVerb reports whether the Norwegian gloss marks a verb
// (infinitives are written with the "å " particle).
func (w Word) IsNorwegianVerb() bool {
	return strings.HasPrefix(w.Norwegian, "å ")
}
