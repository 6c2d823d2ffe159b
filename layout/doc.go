// Package layout provides the heuristics that turn normalized page lines
// into a document title and a heading outline.
//
// # Pipeline
//
// The stages run in this order:
//
//	pages := layout.Normalize(doc)                 // fragment groups -> text lines
//	profile := layout.BuildFontProfile(pages)      // body font size baseline
//	title := layout.NewTitleSelector().Select(&pages[0], profile)
//	outline := layout.NewHeadingClassifier().Classify(pages, profile)
//
// The title selector and the heading classifier only read the font profile,
// so they can run concurrently.
//
// # Font Profile
//
// [BuildFontProfile] takes the most frequent rounded average line size
// (ignoring lines of three characters or fewer) as the body size, and
// derives the emphasis threshold as body + 0.5pt. With no qualifying lines
// the body size is 12pt.
//
// # Title Selection
//
// [TitleSelector] scores the first ten lines of page one with the named
// weights in [TitleWeights] (size, bold, position, length, keyword), picks
// the best line and absorbs an adjacent line that looks like a title
// continuation.
//
// # Heading Classification
//
// [HeadingClassifier] filters out prose-like lines, then matches the ordered
// [PatternRule] table, falling back to font size and boldness. Cleaned,
// de-duplicated headings are sorted by page and then alphabetically.
//
// # Configuration
//
// Each component can be configured independently:
//
//	config := layout.DefaultHeadingConfig()
//	config.LargeFontDelta = 3
//	classifier := layout.NewHeadingClassifierWithConfig(config)
package layout
