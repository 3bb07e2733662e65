package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// ParamList is a comma separated list of parent constructor parameters.
// Separators are captured as tokens so empty pieces keep their place.
type ParamList struct {
	Tokens []*Token `parser:"@@*"`
}

// Token is either a separator or the raw text between two separators
type Token struct {
	Pos   lexer.Position
	Comma bool   `parser:"  @Comma"`
	Text  string `parser:"| @Piece"`
}

// Pieces splits the list on commas and trims every piece. A list with n
// commas always has n+1 pieces.
func (l *ParamList) Pieces() []string {
	pieces := []string{""}
	for _, tok := range l.Tokens {
		if tok.Comma {
			pieces = append(pieces, "")
			continue
		}
		pieces[len(pieces)-1] += tok.Text
	}
	for i, piece := range pieces {
		pieces[i] = strings.TrimSpace(piece)
	}
	return pieces
}
