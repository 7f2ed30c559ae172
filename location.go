package jlex

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// Locate computes the complete location of span within src by scanning the
// buffer for line breaks. The lexer itself reports only byte offsets; use
// Locate when constructing a line/column diagnostic for a token.
func Locate(src []byte, span Span) Location {
	loc := Location{Span: span, First: scanLineCol(src, span.Pos)}
	loc.Last = scanLineCol(src, span.End)
	return loc
}

func scanLineCol(src []byte, pos int) LineCol {
	if pos > len(src) {
		pos = len(src)
	}
	lc := LineCol{Line: 1}
	for _, b := range src[:pos] {
		if b == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
