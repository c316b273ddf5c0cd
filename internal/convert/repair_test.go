package convert

import (
	"strings"
	"testing"
)

func TestRemoveDuplicateHeading_ExactMatch(t *testing.T) {
	body := "====== Test Note ======\n\nContent here"
	got := RemoveDuplicateHeading(body, "Test Note", "test_note")
	if got != "Content here" {
		t.Errorf("got %q, want %q", got, "Content here")
	}
}

func TestRemoveDuplicateHeading_CaseAndQuotes(t *testing.T) {
	body := "====== \"test note\" ======\n\nContent"
	got := RemoveDuplicateHeading(body, "Test Note", "test_note")
	if got != "Content" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveDuplicateHeading_CurlyQuotes(t *testing.T) {
	body := "====== Don’t Panic ======\n\nContent"
	got := RemoveDuplicateHeading(body, "Don't Panic", "dont_panic")
	if got != "Content" {
		t.Errorf("curly apostrophe should fold: got %q", got)
	}
}

func TestRemoveDuplicateHeading_UnderscoreVariations(t *testing.T) {
	// Notable strips underscores from the title while the slug keeps them;
	// canonical comparison must treat both as the same text.
	title := "Refactor timezone calculations outside importmdfile"
	slug := "refactor_timezone_calculations_outside_import_md_file"
	body := "====== Refactor timezone calculations outside importmdfile ======\n\nContent here"

	got := RemoveDuplicateHeading(body, title, slug)
	if got != "Content here" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveDuplicateHeading_SlugMatch(t *testing.T) {
	body := "====== Another Test Case ======\n\nContent here"
	got := RemoveDuplicateHeading(body, "Different Title", "another_test_case")
	if got != "Content here" {
		t.Errorf("heading matching the slug should be removed: got %q", got)
	}
}

func TestRemoveDuplicateHeading_NoMatchKept(t *testing.T) {
	body := "====== Some Other Heading ======\n\nContent here"
	got := RemoveDuplicateHeading(body, "Different Title", "different_slug")
	if got != body {
		t.Errorf("non-matching heading must stay: got %q", got)
	}
}

func TestRemoveDuplicateHeading_OnlyFirstRemoved(t *testing.T) {
	body := "====== Test Note ======\n\nIntro\n\n====== Test Note ======\nMore"
	got := RemoveDuplicateHeading(body, "Test Note", "test_note")
	if !strings.Contains(got, "====== Test Note ======") {
		t.Error("second identical heading is body content and must stay")
	}
	if strings.Count(got, "====== Test Note ======") != 1 {
		t.Errorf("want exactly one heading left, got %q", got)
	}
}

func TestRemoveDuplicateHeading_FirstLineNotHeading(t *testing.T) {
	body := "Plain text first\n\n====== Test Note ======\nMore"
	got := RemoveDuplicateHeading(body, "Test Note", "test_note")
	if got != body {
		t.Errorf("headings after body text must stay: got %q", got)
	}
}

func TestRemoveDuplicateHeading_LeadingBlanksSkipped(t *testing.T) {
	body := "\n\n====== Test Note ======\n\nContent"
	got := RemoveDuplicateHeading(body, "Test Note", "test_note")
	if got != "Content" {
		t.Errorf("got %q", got)
	}
}
