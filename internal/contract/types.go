package contract

// ParentContract references a contract or library by name and import path
type ParentContract struct {
	Name string
	Path string
}

// Parent is an inherited contract with its constructor arguments
type Parent struct {
	Contract ParentContract
	Params   []Value
}

// Using is a `using <library> for <type>;` directive
type Using struct {
	Library  ParentContract
	UsingFor string
}

// FunctionArgument is a typed, named parameter
type FunctionArgument struct {
	Type string
	Name string
}

// FunctionKind is the visibility keyword of a function
type FunctionKind string

const (
	Internal FunctionKind = "internal"
	Public   FunctionKind = "public"
	External FunctionKind = "external"
	Private  FunctionKind = "private"
)

// BaseFunction identifies a function. Functions are keyed by name and
// parameter names, so two references with the same names share one entry.
type BaseFunction struct {
	Name       string
	Args       []FunctionArgument
	Returns    []string
	Kind       FunctionKind
	Mutability Mutability // initial mutability, nonpayable when empty
}

// Function accumulates everything contributed to one function signature
type Function struct {
	BaseFunction
	Override  *OrderedSet
	Modifiers []string
	Code      []string
	Final     bool
}

// BaseModifier identifies a modifier definition
type BaseModifier struct {
	Name string
	Args []FunctionArgument
}

// Modifier accumulates the body of one modifier definition
type Modifier struct {
	BaseModifier
	Code  []string
	Final bool
}

// EventProperty is an event parameter
type EventProperty struct {
	FunctionArgument
	Indexed bool
}

// Event is an event declaration
type Event struct {
	Name       string
	Properties []EventProperty
}

// Enum is an enumeration declaration
type Enum struct {
	Name    string
	Options []string
}

// Struct is a struct declaration
type Struct struct {
	Name   string
	Fields []FunctionArgument
}
