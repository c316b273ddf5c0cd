package textutil

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"café", "cafe"},
		{"naïve résumé", "naive resume"},
		{"Don’t", "Don't"},
		{"“quoted”", `"quoted"`},
		{"‘single’", "'single'"},
		{"em—dash", "em-dash"},
		{"en–dash", "en-dash"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Test Note", "testnote"},
		{"refactor_timezone", "refactortimezone"},
		{"Don’t Panic", "dontpanic"},
		{"Café 42", "cafe42"},
		{"  spaced  out  ", "spacedout"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
