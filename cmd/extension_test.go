package cmd

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	path, out := setup(t, "")
	*currency = "BRL"

	tempDir := t.TempDir()
	script := "#!/bin/sh\necho \"$" + EnvLedgerFile + " $" + EnvCurrency + " $" + EnvVerbose + " $1\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "bgt-hello"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension(context.Background(), "hello", []string{"world"})

	assert.True(t, found)
	assert.Equal(t, 3, code)
	assert.Equal(t, path+" BRL false world\n", out.String())
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	found, code := RunExtension(context.Background(), "hello", nil)

	assert.False(t, found)
	assert.Equal(t, 0, code)
}
