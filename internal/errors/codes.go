package errors

// Error codes for the solgen generator.
// These codes are used in error messages, CLI reports and LSP diagnostics
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Blueprint input errors
// E0200-E0299: Value printing errors
// E0400-E0499: Contract declaration errors

const (
	// Blueprint input errors (E0100-E0199)

	// E0101: Blueprint document could not be decoded
	ErrorBlueprintSyntax = "E0101"

	// E0102: Parent constructor parameter list could not be parsed
	ErrorInvalidParams = "E0102"

	// Value printing errors (E0200-E0299)

	// E0201: Numeric literal is not a safe integer
	ErrorUnrepresentableValue = "E0201"

	// E0202: Value matches none of the known shapes
	ErrorUnknownValue = "E0202"

	// Contract declaration errors (E0400-E0499)

	// E0401: Code added to a finalized function
	ErrorFunctionFinalized = "E0401"

	// E0402: Function body set twice
	ErrorFunctionBodySet = "E0402"

	// E0403: Modifier body set twice
	ErrorModifierCodeSet = "E0403"

	// E0404: Signature registered as both function and modifier
	ErrorSignatureCollision = "E0404"

	// E0405: Mutability is not one of the four known values
	ErrorInvalidMutability = "E0405"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorBlueprintSyntax:
		return "Blueprint document is not valid JSON or YAML"
	case ErrorInvalidParams:
		return "Parent constructor parameters could not be parsed"
	case ErrorUnrepresentableValue:
		return "Number cannot be printed as a safe integer literal"
	case ErrorUnknownValue:
		return "Value is not a literal, annotated value, number or string"
	case ErrorFunctionFinalized:
		return "Function body was already set and cannot be extended"
	case ErrorFunctionBodySet:
		return "Function body can only be set once on a function without code"
	case ErrorModifierCodeSet:
		return "Modifier body can only be set once on a modifier without code"
	case ErrorSignatureCollision:
		return "Function and modifier share the same signature"
	case ErrorInvalidMutability:
		return "Mutability must be pure, view, nonpayable or payable"
	default:
		return "Unknown error"
	}
}
