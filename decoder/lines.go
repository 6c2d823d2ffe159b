package decoder

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outline/model"
)

// row is a set of glyphs sharing a baseline
type row struct {
	yMin, yMax float64
	glyphs     []pdf.Text
}

// groupGlyphs groups glyphs into lines (top to bottom) and splits each
// line into fragments on font or size changes.
func (d *Decoder) groupGlyphs(glyphs []pdf.Text) []model.FragmentGroup {
	rows := d.groupIntoRows(glyphs)

	groups := make([]model.FragmentGroup, 0, len(rows))
	for _, r := range rows {
		if group := d.buildFragments(r.glyphs); len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// groupIntoRows buckets glyphs whose Y lies within the line tolerance of an
// existing row. Rows are returned top of page first.
func (d *Decoder) groupIntoRows(glyphs []pdf.Text) []row {
	var rows []row

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}

		tol := d.config.LineTolerance * glyphSize(g)
		found := false
		for i := range rows {
			if g.Y >= rows[i].yMin-tol && g.Y <= rows[i].yMax+tol {
				rows[i].glyphs = append(rows[i].glyphs, g)
				rows[i].yMin = math.Min(rows[i].yMin, g.Y)
				rows[i].yMax = math.Max(rows[i].yMax, g.Y)
				found = true
				break
			}
		}
		if !found {
			rows = append(rows, row{yMin: g.Y, yMax: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].yMax > rows[j].yMax
	})

	for _, r := range rows {
		sort.SliceStable(r.glyphs, func(i, j int) bool {
			return r.glyphs[i].X < r.glyphs[j].X
		})
	}

	return rows
}

// buildFragments merges the glyphs of one row into styled fragments
func (d *Decoder) buildFragments(glyphs []pdf.Text) model.FragmentGroup {
	var (
		group   model.FragmentGroup
		current *model.StyledFragment
		text    strings.Builder
		lastEnd float64
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Text = norm.NFC.String(text.String())
		group = append(group, *current)
		current = nil
		text.Reset()
	}

	for _, g := range glyphs {
		size := glyphSize(g)

		if strings.TrimSpace(g.S) == "" {
			if current != nil && !strings.HasSuffix(text.String(), " ") {
				text.WriteString(" ")
			}
			lastEnd = g.X + g.W
			continue
		}

		if current != nil {
			gap := g.X - lastEnd
			if gap > d.config.WordGapRatio*size && !strings.HasSuffix(text.String(), " ") {
				text.WriteString(" ")
			}

			if g.Font != current.FontFamily || g.FontSize != current.Size {
				flush()
			}
		}

		box := model.NewBBox(g.X, g.Y, g.X+g.W, g.Y+size)
		if current == nil {
			current = &model.StyledFragment{
				Size:       g.FontSize,
				Flags:      FontFlags(g.Font),
				FontFamily: g.Font,
				BBox:       box,
			}
		} else {
			current.BBox = current.BBox.Union(box)
		}

		text.WriteString(g.S)
		lastEnd = g.X + g.W
	}
	flush()

	for i := range group {
		group[i].FontFamily = FontFamily(group[i].FontFamily)
	}
	return group
}

// glyphSize returns the glyph's font size, falling back to the default
// size when the content stream reports none.
func glyphSize(g pdf.Text) float64 {
	if g.FontSize > 0 {
		return g.FontSize
	}
	return model.DefaultFontSize
}
