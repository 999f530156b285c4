package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"group", "#", "caption"},
		{"main", "2", "Print"},
		{"maintenance", "10", "Back"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"group         #  caption",
		"main          2  Print",
		"maintenance  10  Back",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRaggedRowsAndWideRunes(t *testing.T) {
	rows := [][]string{
		{"é", "x"},
		{"ab"},
	}
	got := Format(rows, nil)
	want := []string{"é   x", "ab"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
