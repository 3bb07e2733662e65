package contract

// Value is an argument expression printed into generated code.
// It is one of Lit, Note, Number or String.
type Value interface {
	isValue()
}

// Lit is printed verbatim
type Lit string

// Note is a value followed by an inline comment
type Note struct {
	Value Value
	Note  string
}

// MaxSafeInteger is the largest integer below which every integer has an
// exact float64 representation
const MaxSafeInteger = 1<<53 - 1

// Number is printed as a decimal integer and must be a safe integer,
// at most MaxSafeInteger in magnitude
type Number float64

// String is printed as a quoted string literal
type String string

func (Lit) isValue()    {}
func (Note) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
