package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t, func() error {
		fmt.Println("hello from test")
		return nil
	})
	if !Contains(out, "hello from test") {
		t.Errorf("captured output = %q", out)
	}
}

func TestWriteFileTree(t *testing.T) {
	dir := t.TempDir()
	WriteFileTree(t, dir, map[string]string{
		"applications/firefox.desktop": "[Desktop Entry]\nName=Firefox\n",
		"nested/deep/file.txt":         "content",
	})

	data, err := os.ReadFile(filepath.Join(dir, "applications", "firefox.desktop"))
	if err != nil {
		t.Fatal(err)
	}
	if !Contains(string(data), "Name=Firefox") {
		t.Errorf("file content = %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "nested", "deep", "file.txt")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}
}
