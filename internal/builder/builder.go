package builder

import (
	"strings"

	"github.com/tliron/commonlog"

	"solgen/internal/contract"
)

// DefaultSolidityVersion is the compiler version written into the pragma
const DefaultSolidityVersion = "0.8.9"

const overridesComment = "// The following functions are overrides required by Solidity."

var log = commonlog.GetLogger("solgen.builder")

// Model is the read-only view of a contract the builder renders
type Model interface {
	Name() string
	Parents() []contract.Parent
	Imports() []string
	Using() []contract.Using
	Functions() []*contract.Function
	Variables() []string
	ConstructorCode() []string
	ConstructorArgs() []contract.FunctionArgument
	Modifiers() []*contract.Modifier
	Events() []contract.Event
	Enumerations() []contract.Enum
	Structs() []contract.Struct
}

// Option configures the rendered header
type Option func(*config)

type config struct {
	version string
	license string
}

// WithVersion sets the solidity version of the pragma line
func WithVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.version = version
		}
	}
}

// WithLicense adds an SPDX license identifier line above the pragma
func WithLicense(license string) Option {
	return func(c *config) {
		c.license = license
	}
}

// Builder renders a contract model into Solidity source
type Builder struct {
	model  Model
	config config
}

func New(model Model, opts ...Option) *Builder {
	cfg := config{version: DefaultSolidityVersion}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{model: model, config: cfg}
}

// Render is a shorthand for New(model, opts...).Source()
func Render(model Model, opts ...Option) (string, error) {
	return New(model, opts...).Source()
}

// Source renders the current state of the model. It does not modify the
// model, so rendering twice gives the same text.
func (b *Builder) Source() (string, error) {
	log.Debugf("rendering contract %s", b.model.Name())

	fns := b.sortedFunctions()

	constructor, err := b.printConstructor()
	if err != nil {
		return "", err
	}

	body := []Block{
		b.printUsingFor(),
		b.printDeclarations(),
		constructor,
	}
	for _, modifier := range b.model.Modifiers() {
		body = append(body, printModifierFunction(modifier))
	}
	for _, fn := range fns.code {
		body = append(body, printFunction(fn))
	}
	for _, fn := range fns.modifiers {
		body = append(body, printFunction(fn))
	}

	var overrides []Block
	for _, fn := range fns.override {
		if printed := printFunction(fn); len(printed) > 0 {
			overrides = append(overrides, printed)
		}
	}
	if len(overrides) > 0 {
		body = append(body, Block{Text(overridesComment)})
		body = append(body, overrides...)
	}

	header := Block{}
	if b.config.license != "" {
		header = append(header, Text("// SPDX-License-Identifier: "+b.config.license))
	}
	header = append(header, Text("pragma solidity ^"+b.config.version+";"))

	imports := Block{}
	for _, path := range b.model.Imports() {
		imports = append(imports, Text(`import "`+path+`";`))
	}

	return FormatLines(SpaceBetween(
		header,
		imports,
		Block{
			Text(b.printContractHeading()),
			SpaceBetween(body...),
			Text("}"),
		},
	)...), nil
}

func (b *Builder) printContractHeading() string {
	heading := []string{"contract", b.model.Name()}
	if parents := b.model.Parents(); len(parents) > 0 {
		names := make([]string, len(parents))
		for i, p := range parents {
			names[i] = p.Contract.Name
		}
		heading = append(heading, "is "+strings.Join(names, ", "))
	}
	return strings.Join(append(heading, "{"), " ")
}

func (b *Builder) printUsingFor() Block {
	block := Block{}
	for _, u := range b.model.Using() {
		block = append(block, Text("using "+u.Library.Name+" for "+u.UsingFor+";"))
	}
	return block
}

// printDeclarations renders raw variable lines followed by the structured
// enumerations, structs and events.
func (b *Builder) printDeclarations() Block {
	block := textBlock(b.model.Variables())
	for _, e := range b.model.Enumerations() {
		block = append(block, Text("enum "+e.Name+" { "+strings.Join(e.Options, ", ")+" }"))
	}
	for _, s := range b.model.Structs() {
		fields := make([]string, len(s.Fields))
		for i, field := range s.Fields {
			fields[i] = printArgument(field) + ";"
		}
		block = append(block, Text("struct "+s.Name+" {"), textBlock(fields), Text("}"))
	}
	for _, e := range b.model.Events() {
		props := make([]string, len(e.Properties))
		for i, prop := range e.Properties {
			if prop.Indexed {
				props[i] = prop.Type + " indexed " + prop.Name
			} else {
				props[i] = printArgument(prop.FunctionArgument)
			}
		}
		block = append(block, Text("event "+e.Name+"("+strings.Join(props, ", ")+");"))
	}
	return block
}

func (b *Builder) printConstructor() (Block, error) {
	hasParentParams := false
	for _, p := range b.model.Parents() {
		if len(p.Params) > 0 {
			hasParentParams = true
			break
		}
	}
	code := b.model.ConstructorCode()
	if !hasParentParams && len(code) == 0 {
		return Block{}, nil
	}

	var parents []string
	for _, p := range b.model.Parents() {
		if p.Contract.Name == contract.InitializerName || len(p.Params) == 0 {
			continue
		}
		call, err := printParentConstructor(p)
		if err != nil {
			return nil, err
		}
		parents = append(parents, call)
	}

	return printHeading("constructor", printArguments(b.model.ConstructorArgs()), parents, code), nil
}

func printParentConstructor(p contract.Parent) (string, error) {
	values := make([]string, len(p.Params))
	for i, param := range p.Params {
		value, err := printValue(param)
		if err != nil {
			return "", err
		}
		values[i] = value
	}
	return p.Contract.Name + "(" + strings.Join(values, ", ") + ")", nil
}

func printArgument(arg contract.FunctionArgument) string {
	return arg.Type + " " + arg.Name
}

func printArguments(args []contract.FunctionArgument) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = printArgument(arg)
	}
	return out
}

func printModifierFunction(modifier *contract.Modifier) Block {
	return Block{
		Text("modifier " + modifier.Name + "(" + strings.Join(printArguments(modifier.Args), ", ") + "){"),
		textBlock(modifier.Code),
		Text("}"),
	}
}
