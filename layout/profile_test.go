package layout

import (
	"testing"

	"github.com/tsawler/outline/model"
)

// makeLine creates a normalized line for heuristic tests
func makeLine(text string, size float64, bold bool) model.TextLine {
	return model.TextLine{
		Text:        text,
		AvgFontSize: size,
		MaxFontSize: size,
		IsBold:      bold,
	}
}

func makePage(number int, lines ...model.TextLine) model.Page {
	return model.Page{Number: number, Lines: lines}
}

func TestBuildFontProfileEmptyDocument(t *testing.T) {
	for name, pages := range map[string][]model.Page{
		"nil pages":   nil,
		"empty pages": {makePage(1), makePage(2)},
		"short lines only": {makePage(1,
			makeLine("1", 10, false),
			makeLine("abc", 10, false),
			makeLine("  ab  ", 18, true),
		)},
	} {
		t.Run(name, func(t *testing.T) {
			p := BuildFontProfile(pages)
			if p.BodyFontSize != 12.0 {
				t.Errorf("BodyFontSize = %v, want 12.0", p.BodyFontSize)
			}
			if p.SizeThreshold != 12.5 {
				t.Errorf("SizeThreshold = %v, want 12.5", p.SizeThreshold)
			}
			if len(p.UniqueSizes) != 0 {
				t.Errorf("UniqueSizes = %v, want empty", p.UniqueSizes)
			}
			if p.QualifyingLines != 0 {
				t.Errorf("QualifyingLines = %d, want 0", p.QualifyingLines)
			}
		})
	}
}

func TestBuildFontProfileMode(t *testing.T) {
	pages := []model.Page{
		makePage(1,
			makeLine("Document Title", 20, true),
			makeLine("Body text line one", 10, false),
			makeLine("Body text line two", 10.04, false),
		),
		makePage(2,
			makeLine("Section Heading", 14, true),
			makeLine("Body text line three", 9.96, false),
			makeLine("7", 9, false), // too short, ignored
		),
	}

	p := BuildFontProfile(pages)
	if p.BodyFontSize != 10 {
		t.Errorf("BodyFontSize = %v, want 10", p.BodyFontSize)
	}
	if p.SizeThreshold != 10.5 {
		t.Errorf("SizeThreshold = %v, want 10.5", p.SizeThreshold)
	}
	want := []float64{20, 14, 10}
	if len(p.UniqueSizes) != len(want) {
		t.Fatalf("UniqueSizes = %v, want %v", p.UniqueSizes, want)
	}
	for i := range want {
		if p.UniqueSizes[i] != want[i] {
			t.Errorf("UniqueSizes[%d] = %v, want %v", i, p.UniqueSizes[i], want[i])
		}
	}
	if p.QualifyingLines != 5 {
		t.Errorf("QualifyingLines = %d, want 5", p.QualifyingLines)
	}
}

func TestBuildFontProfileTieGoesToFirstSeen(t *testing.T) {
	pages := []model.Page{
		makePage(1,
			makeLine("eleven point", 11, false),
			makeLine("nine point", 9, false),
			makeLine("nine again", 9, false),
			makeLine("eleven again", 11, false),
		),
	}

	p := BuildFontProfile(pages)
	if p.BodyFontSize != 11 {
		t.Errorf("BodyFontSize = %v, want 11 (first seen among ties)", p.BodyFontSize)
	}
}

func TestBuildFontProfileIsDeterministic(t *testing.T) {
	pages := []model.Page{
		makePage(1,
			makeLine("alpha text", 12.3, false),
			makeLine("beta text", 8.1, false),
			makeLine("gamma text", 15.7, false),
		),
	}

	first := BuildFontProfile(pages)
	for i := 0; i < 20; i++ {
		p := BuildFontProfile(pages)
		if p.BodyFontSize != first.BodyFontSize {
			t.Fatalf("run %d: BodyFontSize = %v, want %v", i, p.BodyFontSize, first.BodyFontSize)
		}
	}
	if first.BodyFontSize != 12.3 {
		t.Errorf("BodyFontSize = %v, want 12.3", first.BodyFontSize)
	}
}

func TestRoundSize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, 10},
		{10.04, 10},
		{9.96, 10},
		{11.26, 11.3},
		{7.91, 7.9},
		{10.25, 10.2},
		{10.75, 10.8},
		{12.25, 12.2},
		{10.35, 10.3},
		{10.251, 10.3},
	}

	for _, tt := range tests {
		if got := RoundSize(tt.in); got != tt.want {
			t.Errorf("RoundSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildFontProfileHalfwayAverages(t *testing.T) {
	// a 10pt and a 10.5pt fragment on one line average to exactly 10.25
	pages := []model.Page{makePage(1,
		makeLine("Body text one", 10.25, false),
		makeLine("Body text two", 10.25, false),
		makeLine("Project Scope", 12.25, false),
	)}

	profile := BuildFontProfile(pages)
	if profile.BodyFontSize != 10.2 {
		t.Fatalf("BodyFontSize = %v, want 10.2", profile.BodyFontSize)
	}

	got := NewHeadingClassifier().Classify(pages, profile)
	want := model.HeadingEntry{Level: model.HeadingLevel2, Text: "Project Scope", Page: 1}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Classify() = %+v, want [%+v]", got, want)
	}
}
