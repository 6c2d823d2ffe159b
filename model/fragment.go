package model

// Font descriptor flag bits carried on each fragment. The decoder sets them
// the same way common PDF toolkits report span flags.
const (
	FlagItalic = 1 << 6 // italic-like style
	FlagBold   = 1 << 4 // bold-like weight
)

// DefaultFontSize is used when a fragment carries no usable size.
const DefaultFontSize = 12.0

// StyledFragment is a run of text sharing one font and size, as produced by
// the decoder. Fragments are immutable once they are attached to a line.
type StyledFragment struct {
	Text       string
	Size       float64 // points; zero or negative means "unknown"
	Flags      int
	FontFamily string
	BBox       BBox
}

// FontSize returns the fragment size, falling back to DefaultFontSize when
// the decoder did not report one.
func (f StyledFragment) FontSize() float64 {
	if f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}

// IsBold reports whether the bold flag bit is set
func (f StyledFragment) IsBold() bool {
	return f.Flags&FlagBold != 0
}

// IsItalic reports whether the italic flag bit is set
func (f StyledFragment) IsItalic() bool {
	return f.Flags&FlagItalic != 0
}
