package errors

import (
	"fmt"
	"math"
)

// ErrorBuilder provides a fluent interface for creating generation errors
type ErrorBuilder struct {
	err GenerationError
}

// NewGenerationError creates a new error builder without a source position
func NewGenerationError(code, message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: GenerationError{
			Level:   Error,
			Code:    code,
			Message: message,
		},
	}
}

// NewSourceError creates a new error builder pointing into a source document
func NewSourceError(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: GenerationError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error
func (b *ErrorBuilder) Build() *GenerationError {
	err := b.err
	return &err
}

// FunctionFinalized is returned when code is appended to a function whose body was set
func FunctionFinalized(name string) *GenerationError {
	return NewGenerationError(ErrorFunctionFinalized, fmt.Sprintf("function '%s' is already finalized", name)).
		WithSuggestion("put all the code into the single body passed when finalizing the function").
		WithNote("a finalized function body cannot be extended").
		Build()
}

// FunctionBodySet is returned when a function body is set on a function that already has code
func FunctionBodySet(name string) *GenerationError {
	return NewGenerationError(ErrorFunctionBodySet, fmt.Sprintf("function '%s' has additional code", name)).
		WithHelp("a function body can be set once, and only before any code was added").
		Build()
}

// ModifierCodeSet is returned when a modifier body is set twice or extended after being set
func ModifierCodeSet(name string) *GenerationError {
	return NewGenerationError(ErrorModifierCodeSet, fmt.Sprintf("modifier '%s' has additional code", name)).
		WithHelp("a modifier body can be set once, and only before any code was added").
		Build()
}

// SignatureCollision is returned when a signature is used by both a function and a modifier
func SignatureCollision(signature, existing string) *GenerationError {
	return NewGenerationError(ErrorSignatureCollision, fmt.Sprintf("a %s with signature '%s' is already defined", existing, signature)).
		WithNote("functions and modifiers share one namespace of signatures").
		WithSuggestion("rename the function or the modifier").
		Build()
}

// InvalidMutability is returned when a function is given an unknown mutability
func InvalidMutability(name, mutability string) *GenerationError {
	return NewGenerationError(ErrorInvalidMutability, fmt.Sprintf("function '%s' has unknown mutability '%s'", name, mutability)).
		WithHelp("use pure, view, nonpayable or payable").
		Build()
}

// UnrepresentableNumber is returned when a number is not a safe integer
func UnrepresentableNumber(value float64) *GenerationError {
	builder := NewGenerationError(ErrorUnrepresentableValue, fmt.Sprintf("number not representable (%v)", value))
	if value != math.Trunc(value) {
		builder = builder.WithSuggestion("use an integer, or a literal value for fractional amounts")
	} else {
		builder = builder.WithSuggestion("pass large numbers as literal values")
	}
	return builder.WithNote("numbers must be integers between -(2^53-1) and 2^53-1").Build()
}

// UnknownValue is returned when a value matches none of the known shapes
func UnknownValue(value any) *GenerationError {
	return NewGenerationError(ErrorUnknownValue, fmt.Sprintf("unknown value type %T", value)).
		WithHelp("values must be literals, annotated values, numbers or strings").
		Build()
}

// InvalidParams is returned when a parent parameter list cannot be parsed.
// It carries no position, the list is only a value inside the blueprint.
func InvalidParams(params string, message string) *GenerationError {
	return NewGenerationError(ErrorInvalidParams, fmt.Sprintf("invalid parameter list '%s': %s", params, message)).
		WithSuggestion("separate parameters with commas").
		Build()
}

// BlueprintSyntax is returned when a blueprint document cannot be decoded
func BlueprintSyntax(message string, pos Position) *GenerationError {
	return NewSourceError(ErrorBlueprintSyntax, message, pos).Build()
}
