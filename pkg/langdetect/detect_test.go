package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/commentlint/pkg/langdetect"
)

func TestDetector_Marker(t *testing.T) {
	t.Parallel()

	detector := langdetect.NewDetector()

	tests := []struct {
		name       string
		sourcePath string
		expected   string
	}{
		{"go file", "cmd/main.go", "//"},
		{"c file", "src/alloc.c", "//"},
		{"rust file", "lib.rs", "//"},
		{"python file", "scripts/deploy.py", "#"},
		{"ruby file", "app.rb", "#"},
		{"shell script", "install.sh", "#"},
		{"yaml file", "config.yaml", "#"},
		{"sql file", "schema.sql", "--"},
		{"haskell file", "Main.hs", "--"},
		{"lua file", "init.lua", "--"},
		{"clojure file", "core.clj", ";"},
		{"erlang file", "server.erl", "%"},
		{"empty path falls back", "", "//"},
		{"unknown extension falls back", "data.xyzzy", "//"},
		{"no extension falls back", "README", "//"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, detector.Marker(testCase.sourcePath))
		})
	}
}
