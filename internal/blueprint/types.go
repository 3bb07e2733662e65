package blueprint

import (
	"solgen/internal/contract"
)

// Blueprint is the loosely typed description of a contract. Entries with
// missing required fields are skipped when the contract is built.
type Blueprint struct {
	Name            string     `json:"name" yaml:"name"`
	Parents         []Parent   `json:"parents,omitempty" yaml:"parents,omitempty"`
	ConstructorCode string     `json:"constructorCode,omitempty" yaml:"constructorCode,omitempty"`
	Variables       []Variable `json:"variables,omitempty" yaml:"variables,omitempty"`
	Enums           []Enum     `json:"enums,omitempty" yaml:"enums,omitempty"`
	Structs         []Struct   `json:"structs,omitempty" yaml:"structs,omitempty"`
	Events          []Event    `json:"events,omitempty" yaml:"events,omitempty"`
	Modifiers       []Modifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Functions       []Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Usings          []Using    `json:"usings,omitempty" yaml:"usings,omitempty"`
}

// Parent is an inherited contract. Params is a comma separated list of
// constructor arguments.
type Parent struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Path   string `json:"path" yaml:"path" validate:"required"`
	Params string `json:"params,omitempty" yaml:"params,omitempty"`
}

type Variable struct {
	DataType         string `json:"dataType" yaml:"dataType" validate:"required"`
	Visibility       string `json:"visibility" yaml:"visibility"`
	Name             string `json:"name" yaml:"name" validate:"required"`
	Value            string `json:"value,omitempty" yaml:"value,omitempty"`
	MappingKeyType   string `json:"mappingKeyType,omitempty" yaml:"mappingKeyType,omitempty"`
	MappingValueType string `json:"mappingValueType,omitempty" yaml:"mappingValueType,omitempty"`
}

// Enum values are kept as written, e.g. "NONE, PENDING"
type Enum struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Values string `json:"values" yaml:"values" validate:"required"`
}

type Definition struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Indexed bool   `json:"indexed,omitempty" yaml:"indexed,omitempty"`
}

type Struct struct {
	Name       string       `json:"name" yaml:"name" validate:"required"`
	Definition []Definition `json:"definition" yaml:"definition" validate:"required,firstdefinition"`
}

type Event struct {
	Name       string       `json:"name" yaml:"name" validate:"required"`
	Definition []Definition `json:"definition" yaml:"definition" validate:"required,firstdefinition"`
}

type Argument struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type Modifier struct {
	Name string     `json:"name" yaml:"name" validate:"required"`
	Args []Argument `json:"args,omitempty" yaml:"args,omitempty"`
	Code string     `json:"code" yaml:"code" validate:"required"`
}

type Function struct {
	Name       string     `json:"name" yaml:"name" validate:"required"`
	Args       []Argument `json:"args,omitempty" yaml:"args,omitempty"`
	Returns    []string   `json:"returns,omitempty" yaml:"returns,omitempty"`
	Kind       string     `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=internal public external private"`
	Mutability string     `json:"mutability,omitempty" yaml:"mutability,omitempty" validate:"omitempty,oneof=pure view nonpayable payable"`
	Code       string     `json:"code,omitempty" yaml:"code,omitempty"`
	Modifiers  []string   `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Overrides  []string   `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Base returns the identity of the function
func (f Function) Base() contract.BaseFunction {
	return contract.BaseFunction{
		Name:       f.Name,
		Args:       arguments(f.Args),
		Returns:    f.Returns,
		Kind:       contract.FunctionKind(f.Kind),
		Mutability: contract.Mutability(f.Mutability),
	}
}

type Using struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Path     string `json:"path" yaml:"path" validate:"required"`
	UsingFor string `json:"usingFor" yaml:"usingFor" validate:"required"`
}

func arguments(args []Argument) []contract.FunctionArgument {
	out := make([]contract.FunctionArgument, len(args))
	for i, arg := range args {
		out[i] = contract.FunctionArgument{Type: arg.Type, Name: arg.Name}
	}
	return out
}
