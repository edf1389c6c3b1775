package table

import "testing"

func TestFormatRightAlignsKeys(t *testing.T) {
	rows := [][]string{
		{"<space>", "rofi"},
		{"a", "apps"},
		{"q", "quit"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"<space>  rofi",
		"      a  apps",
		"      q  quit",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatPadsLeftAlignedInnerColumns(t *testing.T) {
	rows := [][]string{
		{"ab", "x", "end"},
		{"a", "xyz", "end"},
	}
	got := Format(rows, nil)
	if got[0] != "ab  x    end" || got[1] != "a   xyz  end" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"日", "wide"},
		{"a", "narrow"},
	}
	got := Format(rows, []Alignment{AlignRight})
	if got[1] != " a  narrow" {
		t.Fatalf("expected wide rune to occupy two cells, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
