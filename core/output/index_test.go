package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportLine(t *testing.T) {
	if got := ExportLine("MenuIcon"); got != `export * from "./MenuIcon";` {
		t.Errorf("got %q", got)
	}
}

func TestAddExportLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.ts")
	initial := "export * from \"./AIcon\";\nexport * from \"./CIcon\";\n"
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := AddExportLine(path, ExportLine("BIcon"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected index to change")
	}
	got, _ := os.ReadFile(path)
	want := "export * from \"./AIcon\";\nexport * from \"./BIcon\";\nexport * from \"./CIcon\";\n"
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	changed, err = AddExportLine(path, ExportLine("BIcon"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("expected no change for existing line")
	}
}

func TestAddExportLine_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.ts")
	changed, err := AddExportLine(path, ExportLine("MenuIcon"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected file to be created")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "export * from \"./MenuIcon\";\n" {
		t.Errorf("got %q", got)
	}
}
