package builder

import (
	"slices"
	"strings"
	"unicode/utf16"

	"solgen/internal/contract"
)

// maxHeadingLength is the budget for a one-line function heading, measured
// as the summed length of its name, arguments and modifiers.
const maxHeadingLength = 72

type sortedFunctions struct {
	code      []*contract.Function
	modifiers []*contract.Function
	override  []*contract.Function
}

// sortedFunctions partitions functions into those with code, those with only
// modifiers, and override stubs.
func (b *Builder) sortedFunctions() sortedFunctions {
	var fns sortedFunctions
	for _, fn := range b.model.Functions() {
		switch {
		case len(fn.Code) > 0:
			fns.code = append(fns.code, fn)
		case len(fn.Modifiers) > 0:
			fns.modifiers = append(fns.modifiers, fn)
		default:
			fns.override = append(fns.override, fn)
		}
	}
	log.Debugf("functions: %d with code, %d with modifiers, %d overrides",
		len(fns.code), len(fns.modifiers), len(fns.override))
	return fns
}

func printFunction(fn *contract.Function) Block {
	overrides := fn.Override.Values()

	// a single override of an empty function is implied by the compiler
	if len(overrides) <= 1 && len(fn.Modifiers) == 0 && len(fn.Code) == 0 && !fn.Final {
		return Block{}
	}

	modifiers := []string{string(fn.Kind)}
	if fn.Mutability != contract.NonPayable {
		modifiers = append(modifiers, string(fn.Mutability))
	}
	modifiers = append(modifiers, fn.Modifiers...)

	switch {
	case len(overrides) == 1:
		modifiers = append(modifiers, "override")
	case len(overrides) > 1:
		modifiers = append(modifiers, "override("+strings.Join(overrides, ", ")+")")
	}

	if len(fn.Returns) > 0 {
		modifiers = append(modifiers, "returns ("+strings.Join(fn.Returns, ", ")+")")
	}

	code := slices.Clone(fn.Code)
	if len(overrides) > 0 && !fn.Final {
		names := make([]string, len(fn.Args))
		for i, arg := range fn.Args {
			names[i] = arg.Name
		}
		superCall := "super." + fn.Name + "(" + strings.Join(names, ", ") + ");"
		if len(fn.Returns) > 0 {
			superCall = "return " + superCall
		}
		code = append(code, superCall)
	}

	if len(modifiers)+len(fn.Code) <= 1 {
		return Block{}
	}
	return printHeading("function "+fn.Name, printArguments(fn.Args), modifiers, code)
}

// printHeading lays out a function-like definition. Short headings are kept
// on one line; long ones put the signature, each modifier and the brace on
// separate lines.
func printHeading(kindedName string, args, modifiers, code []string) Block {
	headingLength := tokenLength(kindedName)
	for _, s := range args {
		headingLength += tokenLength(s)
	}
	for _, s := range modifiers {
		headingLength += tokenLength(s)
	}

	braces := "{"
	if len(code) == 0 {
		braces = "{}"
	}

	signature := kindedName + "(" + strings.Join(args, ", ") + ")"

	fn := Block{}
	if headingLength <= maxHeadingLength {
		heading := append([]string{signature}, modifiers...)
		fn = append(fn, Text(strings.Join(append(heading, braces), " ")))
	} else {
		fn = append(fn, Text(signature), textBlock(modifiers), Text(braces))
	}

	if len(code) > 0 {
		fn = append(fn, textBlock(code), Text("}"))
	}

	return fn
}

// tokenLength counts UTF-16 code units
func tokenLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
