package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("package x\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFiles_SortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.go")
	writeFile(t, root, "a.go")
	writeFile(t, root, "sub/c.go")
	writeFile(t, root, "vendor/d.go")
	writeFile(t, root, ".hidden/e.go")
	writeFile(t, root, ".dotfile.go")

	files, err := Files(root, NewFilter(nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.go", "b.go", "sub/c.go"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i, w := range want {
		if files[i] != w {
			t.Errorf("files[%d] = %q, want %q", i, files[i], w)
		}
	}
}

func TestFiles_IncludeGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go")
	writeFile(t, root, "main.py")
	writeFile(t, root, "sub/util.go")

	files, err := Files(root, NewFilter([]string{"*.go"}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range files {
		if filepath.Ext(f) != ".go" {
			t.Errorf("include filter leaked %q", f)
		}
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %v", files)
	}
}

func TestFiles_ExcludeGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go")
	writeFile(t, root, "main_test.go")
	writeFile(t, root, "gen/schema.go")

	files, err := Files(root, NewFilter(nil, []string{"*_test.go", "gen/"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 1 || files[0] != "main.go" {
		t.Errorf("expected [main.go], got %v", files)
	}
}

func TestFiles_SingleFileRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "solo.go")

	files, err := Files(filepath.Join(root, "solo.go"), NewFilter(nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != "solo.go" {
		t.Errorf("expected [solo.go], got %v", files)
	}
}

func TestFiles_MissingRoot(t *testing.T) {
	if _, err := Files(filepath.Join(t.TempDir(), "nope"), NewFilter(nil, nil)); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFilter_EmptyIncludeMatchesAll(t *testing.T) {
	f := NewFilter(nil, nil)
	if !f.Match("anything/at/all.rs") {
		t.Error("empty filter should match everything")
	}
}
