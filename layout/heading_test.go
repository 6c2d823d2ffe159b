package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/outline/model"
)

func TestHeadingClassifierClassifyLine(t *testing.T) {
	classifier := NewHeadingClassifier()
	const body = 12.0

	tests := []struct {
		name      string
		line      model.TextLine
		wantOK    bool
		wantLevel model.HeadingLevel
		wantRule  string
	}{
		{"section title below body size", makeLine("Revision History", 10, false), true, model.HeadingLevel1, "Revision History"},
		{"section title case-insensitive", makeLine("REFERENCES", 12, false), true, model.HeadingLevel1, "References"},
		{"section title lower-case", makeLine("table of contents", 12, false), true, model.HeadingLevel1, "Table of Contents"},
		{"numbered section", makeLine("2. Introduction to Testing", 12, false), true, model.HeadingLevel1, "numbered section"},
		{"sub-numbered section", makeLine("2.1 Business Outcomes", 12, false), true, model.HeadingLevel2, "sub-numbered section"},
		{"numbered references", makeLine("4 References", 12, false), true, model.HeadingLevel1, "numbered references"},
		{"chapter", makeLine("Chapter 3 Results", 12, false), true, model.HeadingLevel1, "chapter"},
		{"section", makeLine("Section 2", 12, false), true, model.HeadingLevel1, "section"},
		{"large font H2", makeLine("Project Scope", 15, false), true, model.HeadingLevel2, "font"},
		{"large font H1", makeLine("Project Scope", 17, false), true, model.HeadingLevel1, "font"},
		{"font at threshold", makeLine("Project Scope", 14, false), false, model.HeadingLevelUnknown, ""},
		{"bold slightly larger", makeLine("Key Results", 13, true), true, model.HeadingLevel2, "bold"},
		{"bold at body size", makeLine("Key Results", 12.5, true), false, model.HeadingLevelUnknown, ""},
		{"bold lower-case start", makeLine("key results", 13, true), false, model.HeadingLevelUnknown, ""},
		{"bold with connective substring", makeLine("Information Model", 13, true), false, model.HeadingLevelUnknown, ""},
		{"bold too many words", makeLine("One Two Three Four Five Six Seven Eight Nine Ten Eleven", 13, true), false, model.HeadingLevelUnknown, ""},
		{"plain body line", makeLine("Ordinary text at body size", 12, false), false, model.HeadingLevelUnknown, ""},
		{"pattern beats font", makeLine("1.1 Intended Audience", 20, true), true, model.HeadingLevel2, "sub-numbered section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.ClassifyLine(tt.line, body)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyLine(%q) ok = %v, want %v", tt.line.Text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", got.Level, tt.wantLevel)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", got.Rule, tt.wantRule)
			}
		})
	}
}

func TestHeadingClassifierIsCandidate(t *testing.T) {
	classifier := NewHeadingClassifier()

	tests := []struct {
		text string
		want bool
	}{
		{"AB", false},
		{"ABC", true},
		{strings.Repeat("a", 150), true},
		{strings.Repeat("a", 151), false},
		{"2024", false},
		{"Page 3 of 10", false},
		{"２０２４", false},
		{"Page\u00a0１２", false},
		{"Version\u3000２ Notes", false},
		{"www.example.com", false},
		{"Contact us at info@example.com", false},
		{"Testing with email support", false},
		{"Version 2.1 Release", false},
		{"© 2023 Copyright ISTQB", false},
		{"See https://example.org", false},
		{"one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen", false},
		{"the cat and the dog and the bird", false},
		{"Cats and Dogs", true},
		{"Cats and Dogs and Birds", false},
		{"This is a somewhat long sentence that ends here.", false},
		{"A short sentence.", true},
		{"Business Outcomes", true},
	}

	for _, tt := range tests {
		if got := classifier.IsCandidate(tt.text); got != tt.want {
			t.Errorf("IsCandidate(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHeadingClassifierClassify(t *testing.T) {
	sentence := "This paragraph explains in considerable detail how the syllabus was prepared and " +
		"who reviewed each of its chapters."

	pages := []model.Page{
		makePage(1,
			makeLine("Revision History", 10, false),
			makeLine("Acknowledgements", 12, false),
			makeLine("Abstract", 12, false),
			makeLine(sentence, 15, false),
		),
		makePage(2,
			makeLine("Introduction", 12, false),
			makeLine("1.1 Intended Audience", 13, false),
			makeLine("Body text at the normal size.", 12, false),
		),
		makePage(3,
			makeLine("Introduction", 18, true),
			makeLine("Scope of the Document.", 17, false),
			makeLine("Key Results", 13, true),
			makeLine("Information Model", 13, true),
		),
	}
	profile := &model.FontProfile{BodyFontSize: 12, SizeThreshold: 12.5}

	got := NewHeadingClassifier().Classify(pages, profile)
	want := []model.HeadingEntry{
		{Level: model.HeadingLevel1, Text: "Abstract", Page: 1},
		{Level: model.HeadingLevel1, Text: "Acknowledgements", Page: 1},
		{Level: model.HeadingLevel1, Text: "Revision History", Page: 1},
		{Level: model.HeadingLevel2, Text: "1.1 Intended Audience", Page: 2},
		{Level: model.HeadingLevel1, Text: "Introduction", Page: 2},
		{Level: model.HeadingLevel2, Text: "Key Results", Page: 3},
		{Level: model.HeadingLevel1, Text: "Scope of the Document", Page: 3},
	}

	if len(got) != len(want) {
		t.Fatalf("Classify() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHeadingClassifierClassifyEmpty(t *testing.T) {
	classifier := NewHeadingClassifier()

	for name, pages := range map[string][]model.Page{
		"nil":         nil,
		"blank pages": {makePage(1), makePage(2)},
		"body only":   {makePage(1, makeLine("Just some ordinary body text", 12, false))},
	} {
		t.Run(name, func(t *testing.T) {
			got := classifier.Classify(pages, &model.FontProfile{BodyFontSize: 12})
			if got == nil {
				t.Fatal("Classify() must return a non-nil slice")
			}
			if len(got) != 0 {
				t.Errorf("Classify() = %+v, want empty", got)
			}
		})
	}
}

func TestHeadingClassifierNilProfileUsesDefaultBody(t *testing.T) {
	pages := []model.Page{makePage(1, makeLine("Project Scope", 17, false))}

	got := NewHeadingClassifier().Classify(pages, nil)
	if len(got) != 1 || got[0].Level != model.HeadingLevel1 {
		t.Errorf("Classify() = %+v, want one H1 entry", got)
	}
}

func TestHeadingClassifierOrderingLaw(t *testing.T) {
	pages := []model.Page{
		makePage(2, makeLine("Zeta Heading", 20, false), makeLine("Alpha Heading", 20, false)),
		makePage(1, makeLine("Middle Heading", 20, false)),
	}

	got := NewHeadingClassifier().Classify(pages, &model.FontProfile{BodyFontSize: 12})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Page > cur.Page || (prev.Page == cur.Page && prev.Text > cur.Text) {
			t.Errorf("entries %d and %d out of order: %+v, %+v", i-1, i, prev, cur)
		}
	}
	if len(got) != 3 || got[0].Text != "Middle Heading" {
		t.Errorf("Classify() = %+v, want page 1 heading first", got)
	}
}

func TestHeadingClassifierCustomConfig(t *testing.T) {
	config := DefaultHeadingConfig()
	config.LargeFontDelta = 6
	config.H1FontDelta = 10
	classifier := NewHeadingClassifierWithConfig(config)

	if _, ok := classifier.ClassifyLine(makeLine("Project Scope", 17, false), 12); ok {
		t.Error("expected 17pt line to fall below the raised font delta")
	}
	got, ok := classifier.ClassifyLine(makeLine("Project Scope", 19, false), 12)
	if !ok || got.Level != model.HeadingLevel2 {
		t.Errorf("ClassifyLine() = %+v, %v; want H2", got, ok)
	}
	if classifier.Config().LargeFontDelta != 6 {
		t.Error("Config() should return the custom configuration")
	}
}

func TestSortOutline(t *testing.T) {
	entries := []model.HeadingEntry{
		{Level: model.HeadingLevel1, Text: "b", Page: 2},
		{Level: model.HeadingLevel2, Text: "a", Page: 2},
		{Level: model.HeadingLevel1, Text: "z", Page: 1},
		{Level: model.HeadingLevel2, Text: "B", Page: 1},
	}

	SortOutline(entries)

	want := []string{"B", "z", "a", "b"}
	for i, w := range want {
		if entries[i].Text != w {
			t.Errorf("entries[%d].Text = %q, want %q", i, entries[i].Text, w)
		}
	}
}
