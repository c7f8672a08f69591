package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromRows(t *testing.T) {
	tbl, err := FromRows([][]string{
		{"id", "name", "city"},
		{"1", "Alice", "Aachen"},
		{"2", "Bob", "Berlin"},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	if got, want := tbl.Keys(), []string{"1", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := tbl.Headers(), []string{"id", "name", "city"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Headers() = %v, want %v", got, want)
	}

	rec := tbl.Record("1")
	if rec == nil {
		t.Fatal("Record(\"1\") = nil")
	}
	if v, ok := rec.Get("name"); !ok || v != "Alice" {
		t.Errorf("Get(\"name\") = %q, %v, want \"Alice\", true", v, ok)
	}
	if v, ok := rec.Get("city"); !ok || v != "Aachen" {
		t.Errorf("Get(\"city\") = %q, %v, want \"Aachen\", true", v, ok)
	}
	// The key column is not a field.
	if _, ok := rec.Get("id"); ok {
		t.Error("Get(\"id\") found the key column, want absent")
	}
}

func TestFromRowsShortRow(t *testing.T) {
	tbl, err := FromRows([][]string{
		{"id", "name", "city"},
		{"1", "Alice"},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	rec := tbl.Record("1")
	if v, ok := rec.Get("name"); !ok || v != "Alice" {
		t.Errorf("Get(\"name\") = %q, %v, want \"Alice\", true", v, ok)
	}
	if _, ok := rec.Get("city"); ok {
		t.Error("Get(\"city\") present on short row, want absent")
	}
}

func TestFromRowsDuplicateKey(t *testing.T) {
	tbl, err := FromRows([][]string{
		{"id", "name"},
		{"1", "Alice"},
		{"2", "Bob"},
		{"1", "Carol"},
	})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}

	// Last row wins, but the key keeps its original position.
	if got, want := tbl.Keys(), []string{"1", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := tbl.Record("1").Get("name"); v != "Carol" {
		t.Errorf("Get(\"name\") = %q, want \"Carol\"", v)
	}
}

func TestFromRowsEmpty(t *testing.T) {
	if _, err := FromRows(nil); err == nil {
		t.Fatal("FromRows(nil) expected error")
	}
}

func TestFromText(t *testing.T) {
	text := "id, name, role\n1, Alice, admin\n\n2, Bob, guest\n"
	tbl, err := FromText(text, ",")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if v, _ := tbl.Record("2").Get("role"); v != "guest" {
		t.Errorf("Get(\"role\") = %q, want \"guest\"", v)
	}
}

func TestFromTextDelimiter(t *testing.T) {
	tbl, err := FromText("id;name\n1;Ann, Lee", ";")
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if v, _ := tbl.Record("1").Get("name"); v != "Ann, Lee" {
		t.Errorf("Get(\"name\") = %q, want \"Ann, Lee\"", v)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("id,name\n1,Alice\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := FromFile(path, ",")
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if v, _ := tbl.Record("1").Get("name"); v != "Alice" {
		t.Errorf("Get(\"name\") = %q, want \"Alice\"", v)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.csv"), ","); err == nil {
		t.Fatal("FromFile() expected error for missing file")
	}
}

func TestNilTableSentinel(t *testing.T) {
	var tbl *Table
	if tbl.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", tbl.Len())
	}
	if tbl.Keys() != nil {
		t.Errorf("nil Keys() = %v, want nil", tbl.Keys())
	}
	if tbl.Record("x") != nil {
		t.Error("nil Record() != nil")
	}
}
