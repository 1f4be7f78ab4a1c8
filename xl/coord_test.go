package xl

import "testing"

func TestColumnLetters(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := ColumnLetters(tt.col); got != tt.want {
			t.Errorf("ColumnLetters(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestColumnLettersInjective(t *testing.T) {
	seen := map[string]int{}
	for i := 0; i < 20000; i++ {
		s := ColumnLetters(i)
		if prev, ok := seen[s]; ok {
			t.Fatalf("ColumnLetters(%d) and ColumnLetters(%d) both yield %q", prev, i, s)
		}
		seen[s] = i
	}
}

func TestCellReference(t *testing.T) {
	if got := CellReference(0, 1); got != "A1" {
		t.Errorf("CellReference(0, 1) = %q", got)
	}
	if got := CellReference(4, 10); got != "E10" {
		t.Errorf("CellReference(4, 10) = %q", got)
	}
	if got := CellReference(27, 300); got != "AB300" {
		t.Errorf("CellReference(27, 300) = %q", got)
	}
	if got := CellReference(-3, 1); got != "" {
		t.Errorf("CellReference(-3, 1) = %q, want empty", got)
	}
}
