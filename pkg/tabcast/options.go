// Package tabcast converts document tables to delimited text and
// coordinates multi-table export sessions.
package tabcast

import "fmt"

// Separator is the string placed between adjacent cells in a row's output.
// Only the enumerated values are accepted; custom separators are rejected.
type Separator string

const (
	// SeparatorSemicolon is the default separator.
	SeparatorSemicolon Separator = ";"
	SeparatorComma     Separator = ","
	SeparatorTab       Separator = "\t"
	SeparatorPipe      Separator = "|"
	SeparatorTilde     Separator = "~"
	SeparatorCaret     Separator = "^"
	SeparatorColon     Separator = ":"
)

// QuoteStyle is the policy wrapping each cell's output in a fixed character.
type QuoteStyle string

const (
	// QuoteNone leaves cell text unwrapped (default).
	QuoteNone QuoteStyle = "none"
	// QuoteDouble wraps each cell in double quotes.
	QuoteDouble QuoteStyle = "double"
	// QuoteSingle wraps each cell in single quotes.
	QuoteSingle QuoteStyle = "single"
)

// LineBreakPolicy is the normalization applied to CR/LF sequences within a
// cell before quoting. Each occurrence of CRLF, lone CR, or lone LF counts
// as one line break.
type LineBreakPolicy string

const (
	// LineBreakStrip removes line breaks entirely.
	LineBreakStrip LineBreakPolicy = "strip"
	// LineBreakSpace substitutes one space per line break (default).
	LineBreakSpace LineBreakPolicy = "space"
	// LineBreakToken substitutes the literal LineBreakTokenText per line break.
	LineBreakToken LineBreakPolicy = "token"
)

// LineBreakTokenText is the marker inserted by LineBreakToken.
const LineBreakTokenText = "[CR]"

// Config configures a single table conversion.
type Config struct {
	Separator  Separator
	Quote      QuoteStyle
	LineBreaks LineBreakPolicy
}

// DefaultConfig returns the default conversion configuration.
func DefaultConfig() Config {
	return Config{
		Separator:  SeparatorSemicolon,
		Quote:      QuoteNone,
		LineBreaks: LineBreakSpace,
	}
}

// ParseSeparator validates a separator value. It accepts the literal
// separator character or the word "tab" for the tab separator.
func ParseSeparator(s string) (Separator, error) {
	switch s {
	case ";":
		return SeparatorSemicolon, nil
	case ",":
		return SeparatorComma, nil
	case "\t", "tab":
		return SeparatorTab, nil
	case "|":
		return SeparatorPipe, nil
	case "~":
		return SeparatorTilde, nil
	case "^":
		return SeparatorCaret, nil
	case ":":
		return SeparatorColon, nil
	default:
		return "", fmt.Errorf("invalid separator %q (must be one of ; , tab | ~ ^ :)", s)
	}
}

// ParseQuoteStyle validates a quote style name.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch s {
	case "none":
		return QuoteNone, nil
	case "double":
		return QuoteDouble, nil
	case "single":
		return QuoteSingle, nil
	default:
		return "", fmt.Errorf("invalid quote style %q (must be none, double, or single)", s)
	}
}

// ParseLineBreakPolicy validates a line-break policy name.
func ParseLineBreakPolicy(s string) (LineBreakPolicy, error) {
	switch s {
	case "strip":
		return LineBreakStrip, nil
	case "space":
		return LineBreakSpace, nil
	case "token":
		return LineBreakToken, nil
	default:
		return "", fmt.Errorf("invalid line-break handling %q (must be strip, space, or token)", s)
	}
}
