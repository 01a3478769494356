package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// AssertLines fails the test with a character diff when actual differs
// from expected.
func AssertLines(t *testing.T, expected, actual []string) {
	t.Helper()

	want := strings.Join(expected, "\n")
	got := strings.Join(actual, "\n")
	if want == got {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("output mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}

// CreateTempFile creates a temporary file with given content
func CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err, "Should create temp file successfully")

	return filePath
}
