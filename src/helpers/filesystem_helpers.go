package helpers_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and automatically removes it when
// the test is done.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile := createFileWithContents(t, content)

	err := tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

func createFileWithContents(t *testing.T, content string) *os.File {
	t.Helper()

	tmpFile := CreateTempFile(t, "truth-table-test-*")

	_, err := tmpFile.Write([]byte(content))
	require.NoError(t, err)

	return tmpFile
}

// CaptureLogs sends everything logged through the default slog logger, at
// any level, to the returned buffer until the test is done.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var logOutput bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logOutput, &slog.HandlerOptions{Level: slog.LevelDebug})))

	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	return &logOutput
}
