package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LayoutLexer defines the lexical structure for layout scripts.
// Statements are keyword-led, so no statement terminator is needed.
var LayoutLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line.
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace, including newlines.
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords.
	{Name: "KwPlace", Pattern: `\bplace\b`},
	{Name: "KwTap", Pattern: `\btap\b`},
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwRotate", Pattern: `\brotate\b`},
	{Name: "KwMirror", Pattern: `\bmirror\b`},
	{Name: "KwWinding", Pattern: `\bwinding\b`},

	// Punctuation.
	{Name: "Assign", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},

	// A word either starts with a letter, or starts with digits but
	// contains a letter (catalog names like 12ax7). Tried before Number
	// so the leading digits of such a name are not split off.
	{Name: "Word", Pattern: `[0-9]+[a-zA-Z_][a-zA-Z0-9_]*|[a-zA-Z_][a-zA-Z0-9_]*`},

	// Numbers.
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
})
