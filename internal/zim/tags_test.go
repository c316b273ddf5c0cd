package zim

import "testing"

func TestFormatTag(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"tag", "tag"},
		{"  tag  ", "tag"},
		{"tag-name", "tag_name"},
		{"tag name", "tag_name"},
		{"Projects/AI2Zim", "projects_ai2zim"},
		{"a/b/c", "a_b_c"},
		{"'tag name'", "tag_name"},
		{`"tag name"`, "tag_name"},
		{"tag.name", "tag_name"},
		{"tag:name", "tag_name"},
		{"café", "cafe"},
		{"naïve", "naive"},
		{"tag123", "tag123"},
		{"!@#$%^&*()", ""},
		{"/", ""},
		{"", ""},
		{"complex/tag-name;with lots*of_stuff", "complex_tag_name_with_lots_of_stuff"},
	}
	for _, c := range cases {
		if got := FormatTag(c.in); got != c.want {
			t.Errorf("FormatTag(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTagLine_RoundTrip(t *testing.T) {
	got := TagLine([]string{"Projects/AI2Zim", "Resources"})
	want := "**Tags:** @projects_ai2zim @resources"
	if got != want {
		t.Errorf("TagLine = %q, want %q", got, want)
	}
}

func TestTagLine_DeduplicatesAndSkipsEmpty(t *testing.T) {
	got := TagLine([]string{"tag-name", "", "tag_name", "  spaced "})
	want := "**Tags:** @tag_name @spaced"
	if got != want {
		t.Errorf("TagLine = %q, want %q", got, want)
	}
}

func TestTagLine_Empty(t *testing.T) {
	if got := TagLine(nil); got != "" {
		t.Errorf("TagLine(nil) = %q, want empty", got)
	}
	if got := TagLine([]string{"", "!!"}); got != "" {
		t.Errorf("TagLine(illegal) = %q, want empty", got)
	}
}
