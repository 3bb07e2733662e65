package builder

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"solgen/internal/contract"
	"solgen/internal/errors"
)

// printValue is the single place where argument values become source text
func printValue(value contract.Value) (string, error) {
	switch v := value.(type) {
	case contract.Lit:
		return string(v), nil
	case contract.Note:
		inner, err := printValue(v.Value)
		if err != nil {
			return "", err
		}
		return inner + " /* " + v.Note + " */", nil
	case contract.Number:
		return printNumber(float64(v))
	case contract.String:
		return quote(string(v))
	default:
		return "", errors.UnknownValue(value)
	}
}

func printNumber(n float64) (string, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > contract.MaxSafeInteger {
		return "", errors.UnrepresentableNumber(n)
	}
	if n == 0 {
		return "0", nil
	}
	return strconv.FormatFloat(n, 'f', 0, 64), nil
}

// quote prints s as a double quoted literal escaped like JSON. Line and
// paragraph separators are written unescaped.
func quote(s string) (string, error) {
	var out strings.Builder
	out.WriteByte('"')
	for {
		i := strings.IndexAny(s, "\u2028\u2029")
		segment := s
		if i >= 0 {
			segment = s[:i]
		}
		encoded, err := encodeString(segment)
		if err != nil {
			return "", err
		}
		out.WriteString(encoded[1 : len(encoded)-1])
		if i < 0 {
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		out.WriteString(s[i : i+size])
		s = s[i+size:]
	}
	out.WriteByte('"')
	return out.String(), nil
}

func encodeString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
