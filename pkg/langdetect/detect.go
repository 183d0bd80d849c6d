// Package langdetect resolves the line-comment marker for a source file.
// It uses go-enry to detect the programming language from the file path the
// tree document names, then maps the language onto its comment marker.
// commentlint never reads the source file; the path alone drives detection.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// DefaultMarker is used when the language is unknown or has no line comments.
const DefaultMarker = "//"

// markersByLanguage maps enry language names onto line-comment markers.
// Only languages that diverge from the C-style default are listed.
//
//nolint:gochecknoglobals // Read-only lookup table
var markersByLanguage = map[string]string{
	"python":     "#",
	"ruby":       "#",
	"shell":      "#",
	"bash":       "#",
	"perl":       "#",
	"r":          "#",
	"makefile":   "#",
	"dockerfile": "#",
	"yaml":       "#",
	"toml":       "#",
	"elixir":     "#",
	"sql":        "--",
	"plsql":      "--",
	"tsql":       "--",
	"haskell":    "--",
	"lua":        "--",
	"elm":        "--",
	"ada":        "--",
	"lisp":       ";",
	"scheme":     ";",
	"clojure":    ";",
	"emacs lisp": ";",
	"vim script": "\"",
	"erlang":     "%",
	"tex":        "%",
	"matlab":     "%",
	"fortran":    "!",
}

// Detector resolves markers from source paths. It implements
// lint.MarkerDetector and holds no state.
type Detector struct{}

// NewDetector creates a marker detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Marker returns the line-comment marker for the given source path.
// Unknown languages fall back to the C-style default; path-only detection is
// deliberate since the source text never reaches commentlint.
func (d *Detector) Marker(sourcePath string) string {
	if sourcePath == "" {
		return DefaultMarker
	}

	lang, _ := enry.GetLanguageByExtension(sourcePath)
	if lang == "" {
		lang, _ = enry.GetLanguageByFilename(sourcePath)
	}
	if lang == "" {
		return DefaultMarker
	}

	if marker, ok := markersByLanguage[strings.ToLower(lang)]; ok {
		return marker
	}
	return DefaultMarker
}
