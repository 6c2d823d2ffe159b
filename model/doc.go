// Package model provides the data types shared by the decoder, the layout
// heuristics and the result boundary.
//
// # Input Side
//
// The decoder produces a [Document] made of [RawPage] values. Each raw page
// holds [FragmentGroup] values, one per visual line, and each group is a
// slice of [StyledFragment] runs carrying size, font family, flag bits and a
// [BBox].
//
// Normalization turns raw pages into [Page] values whose [TextLine] entries
// carry aggregated metrics (average and maximum size, bold and italic).
//
// # Output Side
//
// Extraction produces a [Result]: a title and an outline of [HeadingEntry]
// values. The JSON form is
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
//
// [ErrorResult] returns the sentinel failure form whose title is
// [ErrorTitle].
//
// # Font Profile
//
// [FontProfile] records the document's body font size and the derived
// emphasis threshold used by the title and heading heuristics.
package model
