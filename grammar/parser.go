package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"solgen/internal/contract"
	"solgen/internal/errors"
)

var parser = buildParser()

func buildParser() *participle.Parser[ParamList] {
	p, err := participle.Build[ParamList](
		participle.Lexer(ParamsLexer),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// ParseParams parses a parent parameter list such as `My Token, MTK, 18`.
// Every piece becomes a string value, empty pieces included. A blank list
// has no values.
func ParseParams(source string) ([]contract.Value, error) {
	if strings.TrimSpace(source) == "" {
		return []contract.Value{}, nil
	}

	list, err := parser.ParseString("", source)
	if err != nil {
		return nil, errors.InvalidParams(source, err.Error())
	}

	pieces := list.Pieces()
	values := make([]contract.Value, len(pieces))
	for i, piece := range pieces {
		values[i] = contract.String(piece)
	}
	return values, nil
}
