package outline

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/outline/decoder"
	"github.com/tsawler/outline/layout"
	"github.com/tsawler/outline/lexicon"
)

// ExtractOptions holds configuration for title and outline extraction.
type ExtractOptions struct {
	title   layout.TitleConfig
	heading layout.HeadingConfig
	decode  decoder.Config

	// stopWords is handed to both heuristics; empty by default
	stopWords lexicon.Set

	// validate runs the structural preflight before decoding
	validate bool

	logger zerolog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		title:   layout.DefaultTitleConfig(),
		heading: layout.DefaultHeadingConfig(),
		decode:  decoder.DefaultConfig(),
		logger:  zerolog.Nop(),
	}
}

// clone creates a copy of ExtractOptions with its own slices.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	newOpts.title.ExcludedTerms = append([]string(nil), o.title.ExcludedTerms...)
	newOpts.title.Keywords = append([]string(nil), o.title.Keywords...)
	newOpts.heading.Exclusions = append(newOpts.heading.Exclusions[:0:0], o.heading.Exclusions...)
	newOpts.heading.Rules = append([]layout.PatternRule(nil), o.heading.Rules...)
	newOpts.heading.BoldConnectives = append([]string(nil), o.heading.BoldConnectives...)

	return newOpts
}

// titleConfig returns the title configuration with the stop-word set attached
func (o ExtractOptions) titleConfig() layout.TitleConfig {
	c := o.title
	c.StopWords = o.stopWords
	return c
}

// headingConfig returns the heading configuration with the stop-word set attached
func (o ExtractOptions) headingConfig() layout.HeadingConfig {
	c := o.heading
	c.StopWords = o.stopWords
	return c
}
