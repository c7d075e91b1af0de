package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devmcp/internal/core"
)

func testModule() *Module {
	return New(Limits{MaxReadLines: 100, MaxFileSizeMB: 10, MaxSearchResults: 50})
}

func TestListDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "zdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	resp, err := testModule().Execute(context.Background(), "list_directory", core.Args{"path": dir})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	items, ok := resp.Data.([]Entry)
	if !ok {
		t.Fatalf("data type: %T", resp.Data)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	// Каталоги идут первыми, затем файлы по имени.
	if items[0].Name != "zdir" || items[0].Type != "directory" {
		t.Fatalf("first entry: %#v", items[0])
	}
	if items[1].Name != "a.txt" || items[2].Name != "b.txt" {
		t.Fatalf("file order: %#v %#v", items[1], items[2])
	}
	if items[1].Size == nil || *items[1].Size != 1 {
		t.Fatalf("file size: %#v", items[1].Size)
	}
	if items[0].Size != nil {
		t.Fatalf("directory size must be null")
	}
}

func TestListDirectoryMissing(t *testing.T) {
	resp, err := testModule().Execute(context.Background(), "list_directory", core.Args{"path": "/no/such/dir"})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if resp.ErrorCode != "not_found" {
		t.Fatalf("error code = %q", resp.ErrorCode)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := testModule().Execute(context.Background(), "read_file", core.Args{"file_path": path})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	fc, ok := resp.Data.(FileContent)
	if !ok {
		t.Fatalf("data type: %T", resp.Data)
	}
	if fc.LinesRead != 3 || fc.Truncated {
		t.Fatalf("lines_read=%d truncated=%v", fc.LinesRead, fc.Truncated)
	}
	if fc.Content[0] != "one" || fc.Content[2] != "three" {
		t.Fatalf("content: %#v", fc.Content)
	}
	if !filepath.IsAbs(fc.Path) {
		t.Fatalf("path must be absolute: %q", fc.Path)
	}
}

func TestReadFileMaxLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n4\n5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := testModule().Execute(context.Background(), "read_file",
		core.Args{"file_path": path, "max_lines": float64(2)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	fc := resp.Data.(FileContent)
	if fc.LinesRead != 2 || !fc.Truncated {
		t.Fatalf("lines_read=%d truncated=%v", fc.LinesRead, fc.Truncated)
	}
}

func TestReadFileExactLimitReportsTruncated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := testModule().Execute(context.Background(), "read_file",
		core.Args{"file_path": path, "max_lines": float64(3)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	fc := resp.Data.(FileContent)
	if fc.LinesRead != 3 || !fc.Truncated {
		t.Fatalf("limit reached must set truncated: lines_read=%d truncated=%v", fc.LinesRead, fc.Truncated)
	}
}

func TestReadFileErrors(t *testing.T) {
	m := testModule()
	dir := t.TempDir()

	if _, err := m.Execute(context.Background(), "read_file", core.Args{"file_path": filepath.Join(dir, "missing")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := m.Execute(context.Background(), "read_file", core.Args{"file_path": dir}); err == nil {
		t.Fatalf("expected error for directory path")
	}
	if _, err := m.Execute(context.Background(), "read_file", core.Args{}); err == nil {
		t.Fatalf("expected error for missing required arg")
	}
}

func TestReadFileSizeLimit(t *testing.T) {
	m := New(Limits{MaxReadLines: 100, MaxFileSizeMB: 1, MaxSearchResults: 50})
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("a", 2*1024*1024)), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	resp, err := m.Execute(context.Background(), "read_file", core.Args{"file_path": path})
	if err == nil {
		t.Fatalf("expected error for oversized file")
	}
	if resp.ErrorCode != "file_too_large" {
		t.Fatalf("error code = %q", resp.ErrorCode)
	}
}

func TestSearchFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, p := range []string{"top.go", "sub/mid.go", "sub/deep/low.go", "sub/skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, p), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	resp, err := testModule().Execute(context.Background(), "search_files",
		core.Args{"pattern": "**/*.go", "directory": dir})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	results := resp.Data.([]Entry)
	if len(results) != 3 {
		t.Fatalf("matches = %d, want 3: %#v", len(results), results)
	}
	for _, r := range results {
		if !strings.HasSuffix(r.Name, ".go") {
			t.Fatalf("unexpected match: %#v", r)
		}
		if !filepath.IsAbs(r.Path) {
			t.Fatalf("path must be absolute: %q", r.Path)
		}
	}
}

func TestSearchFilesMaxResults(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	resp, err := testModule().Execute(context.Background(), "search_files",
		core.Args{"pattern": "*.txt", "directory": dir, "max_results": float64(2)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := len(resp.Data.([]Entry)); got != 2 {
		t.Fatalf("matches = %d, want 2", got)
	}
}

func TestGetFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")
	if err := os.WriteFile(path, []byte("hello"), 0o640); err != nil {
		t.Fatalf("write: %v", err)
	}

	resp, err := testModule().Execute(context.Background(), "get_file_info", core.Args{"file_path": path})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	fi := resp.Data.(FileInfo)
	if fi.Type != "file" || fi.Size != 5 {
		t.Fatalf("info: %#v", fi)
	}
	if fi.Extension != ".md" || fi.Stem != "report" {
		t.Fatalf("extension=%q stem=%q", fi.Extension, fi.Stem)
	}
	if fi.Permissions != "640" {
		t.Fatalf("permissions = %q, want 640", fi.Permissions)
	}
	if fi.CreatedTS <= 0 || fi.Created == "" {
		t.Fatalf("created metadata missing: %#v", fi)
	}
	if fi.ModifiedTS <= 0 || fi.CreatedTS < fi.ModifiedTS-1 {
		t.Fatalf("created/modified out of order: created=%d modified=%d", fi.CreatedTS, fi.ModifiedTS)
	}
	if !filepath.IsAbs(fi.Path) {
		t.Fatalf("path must be absolute: %q", fi.Path)
	}
}

func TestGetFileInfoDirectory(t *testing.T) {
	dir := t.TempDir()
	resp, err := testModule().Execute(context.Background(), "get_file_info", core.Args{"file_path": dir})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	fi := resp.Data.(FileInfo)
	if fi.Type != "directory" {
		t.Fatalf("type = %q", fi.Type)
	}
	if fi.Extension != "" || fi.Stem != "" {
		t.Fatalf("directories carry no extension/stem: %#v", fi)
	}
}
