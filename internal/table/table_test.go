// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader []string
		wantRows   [][]string
	}{
		{
			name:       "trims header whitespace",
			content:    "  Name , Times Cited ,H-Index\nAda,10,3\n",
			wantHeader: []string{"Name", "Times Cited", "H-Index"},
			wantRows:   [][]string{{"Ada", "10", "3"}},
		},
		{
			name:       "pads short rows",
			content:    "a,b,c\n1,2\n",
			wantHeader: []string{"a", "b", "c"},
			wantRows:   [][]string{{"1", "2", ""}},
		},
		{
			name:       "truncates long rows",
			content:    "a,b\n1,2,3\n",
			wantHeader: []string{"a", "b"},
			wantRows:   [][]string{{"1", "2"}},
		},
		{
			name:       "header only",
			content:    "a,b\n",
			wantHeader: []string{"a", "b"},
			wantRows:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, t.TempDir(), "in.csv", tt.content)
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got.Header) != len(tt.wantHeader) {
				t.Fatalf("header = %v, want %v", got.Header, tt.wantHeader)
			}
			for i := range tt.wantHeader {
				if got.Header[i] != tt.wantHeader[i] {
					t.Errorf("header[%d] = %q, want %q", i, got.Header[i], tt.wantHeader[i])
				}
			}
			if len(got.Rows) != len(tt.wantRows) {
				t.Fatalf("rows = %v, want %v", got.Rows, tt.wantRows)
			}
			for i, row := range tt.wantRows {
				for j := range row {
					if got.Rows[i][j] != row[j] {
						t.Errorf("rows[%d][%d] = %q, want %q", i, j, got.Rows[i][j], row[j])
					}
				}
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("err = %v, want ErrMissingInput", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "empty.csv", "")
	_, err := Load(path)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
}

func TestSave_CreatesDirectoryAndRoundTrips(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "deep", "out.csv")

	orig := &Table{
		Header: []string{"researcher_name", "total_citations"},
		Rows:   [][]string{{"Ada", "100"}, {"Grace", "80"}},
	}
	if err := orig.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(out)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Header[0] != "researcher_name" || len(loaded.Rows) != 2 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Rows[1][0] != "Grace" {
		t.Errorf("row order changed: %+v", loaded.Rows)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	tbl := &Table{Header: []string{"a"}, Rows: [][]string{{"1"}}}
	if err := tbl.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "summary.txt")
	if err := WriteFileAtomic(path, []byte("hello\n")); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("content = %q", data)
	}
}

func TestColumnAccess(t *testing.T) {
	tbl := &Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}},
	}
	if tbl.ColumnIndex("b") != 1 {
		t.Errorf("ColumnIndex(b) = %d, want 1", tbl.ColumnIndex("b"))
	}
	if tbl.ColumnIndex("z") != -1 {
		t.Errorf("ColumnIndex(z) = %d, want -1", tbl.ColumnIndex("z"))
	}
	if !tbl.HasColumn("a") || tbl.HasColumn("z") {
		t.Error("HasColumn mismatch")
	}
	if tbl.Cell(0, "b") != "2" {
		t.Errorf("Cell(0, b) = %q, want 2", tbl.Cell(0, "b"))
	}
	if tbl.Cell(0, "z") != "" {
		t.Errorf("Cell(0, z) = %q, want empty", tbl.Cell(0, "z"))
	}
}
