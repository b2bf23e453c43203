package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestDecodeTOMLSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "top = 1\n[corpus]\npaths = [\"a.txt\", \"b\"]\nexport_path = \"out.bin\"\nextensions = [\".txt\", 3]\n\n[server]\nmax_prefix = 12\nallow_insert = false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sections, err := DecodeTOMLSections(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 2 {
		t.Errorf("expected 2 sections, got %d", len(sections))
	}

	server := sections["server"]
	if v, ok := server.Int("max_prefix"); !ok || v != 12 {
		t.Errorf("max_prefix = %d, %v", v, ok)
	}
	if v, ok := server.Bool("allow_insert"); !ok || v {
		t.Errorf("allow_insert = %v, %v", v, ok)
	}
	if _, ok := server.Bool("missing"); ok {
		t.Error("missing key reported as present")
	}

	corpus := sections["corpus"]
	if paths, ok := corpus.StrList("paths"); !ok || len(paths) != 2 || paths[0] != "a.txt" {
		t.Errorf("paths = %v, %v", paths, ok)
	}
	if _, ok := corpus.StrList("extensions"); ok {
		t.Error("mixed list accepted as strings")
	}
	if v, ok := corpus.Str("export_path"); !ok || v != "out.bin" {
		t.Errorf("export_path = %q, %v", v, ok)
	}
}

func TestSet(t *testing.T) {
	section := TOMLSection{
		"limit": int64(7),
		"on":    true,
		"name":  "x",
		"list":  []any{"a", "b"},
		"bad":   "seven",
	}

	limit, on, name, list := 1, false, "", []string{"z"}
	Set(section, "limit", &limit)
	Set(section, "on", &on)
	Set(section, "name", &name)
	Set(section, "list", &list)
	if limit != 7 || !on || name != "x" || len(list) != 2 {
		t.Errorf("got limit=%d on=%v name=%q list=%v", limit, on, name, list)
	}

	kept := 3
	Set(section, "bad", &kept)
	Set(section, "absent", &kept)
	if kept != 3 {
		t.Errorf("mismatched or missing keys must keep the value, got %d", kept)
	}
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	if err := SaveTOMLFile(map[string]any{"server": map[string]any{"max_prefix": 9}}, path); err != nil {
		t.Fatal(err)
	}
	sections, err := DecodeTOMLSections(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := sections["server"].Int("max_prefix"); !ok || v != 9 {
		t.Errorf("max_prefix = %d, %v", v, ok)
	}
}

func TestSaveTOMLFileReportsFailedWrite(t *testing.T) {
	if !FileExists("/dev/full") {
		t.Skip("no /dev/full on this system")
	}
	data := map[string]string{"key": "value"}
	if err := SaveTOMLFile(data, "/dev/full"); err == nil {
		t.Error("expected an error writing to a full device")
	}
}

func TestConfigDir(t *testing.T) {
	if _, err := os.UserHomeDir(); err != nil {
		t.Skip("no home directory")
	}
	dir := ConfigDir("autocorrect")
	if filepath.Base(dir) != "autocorrect" {
		t.Errorf("expected app directory, got %s", dir)
	}
}
