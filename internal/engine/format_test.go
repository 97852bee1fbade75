package engine

import "testing"

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"4500", "4,500"},
		{"1234567", "1,234,567"},
		{"-4500", "-4,500"},
	}
	for _, c := range cases {
		if got := groupThousands(c.in); got != c.want {
			t.Errorf("groupThousands(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatLitres(t *testing.T) {
	v := 6000.4
	if got := formatLitres(&v); got != "6,000" {
		t.Errorf("expected rounded grouped litres, got %q", got)
	}
	if got := formatLitres(nil); got != notAvailable {
		t.Errorf("expected %q for nil, got %q", notAvailable, got)
	}
}

func TestFormatMoney(t *testing.T) {
	v := 45000.254
	if got := formatMoney(&v); got != "45,000.25" {
		t.Errorf("expected grouped money, got %q", got)
	}
}

func TestFormatFloatTrimsTrailingZeros(t *testing.T) {
	v := 550.0
	if got := formatFloat(&v); got != "550" {
		t.Errorf("expected %q, got %q", "550", got)
	}
	v = 0.31
	if got := formatFloat(&v); got != "0.31" {
		t.Errorf("expected %q, got %q", "0.31", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"cotton":        "Cotton",
		"jalna station": "Jalna Station",
		"":              "",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
