package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ParamsLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comma", Pattern: `,`, Action: nil},

		// Everything up to the next separator, whitespace included
		{Name: "Piece", Pattern: `[^,]+`, Action: nil},
	},
})
