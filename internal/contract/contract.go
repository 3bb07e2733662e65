package contract

import (
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/tliron/commonlog"

	"solgen/internal/errors"
)

// InitializerName is the base contract that is always inherited first and
// never receives explicit constructor call syntax.
const InitializerName = "Initializable"

var log = commonlog.GetLogger("solgen.contract")

// Contract accumulates the declarations of a single contract.
// It is not safe for concurrent use, and must be discarded after any
// of its methods returned an error.
type Contract struct {
	name            string
	parents         *orderedmap.OrderedMap[string, Parent]
	using           []Using
	functions       *signatureStore[Function]
	modifiers       *signatureStore[Modifier]
	variables       *OrderedSet
	constructorCode []string
	constructorArgs []FunctionArgument
	events          *orderedmap.OrderedMap[string, Event]
	enumerations    *orderedmap.OrderedMap[string, Enum]
	structs         *orderedmap.OrderedMap[string, Struct]
}

// New creates an empty contract named after the sanitized form of name
func New(name string) *Contract {
	return &Contract{
		name:            SanitizeName(name),
		parents:         orderedmap.NewOrderedMap[string, Parent](),
		using:           []Using{},
		functions:       newSignatureStore[Function](),
		modifiers:       newSignatureStore[Modifier](),
		variables:       NewOrderedSet(),
		constructorCode: []string{},
		constructorArgs: []FunctionArgument{},
		events:          orderedmap.NewOrderedMap[string, Event](),
		enumerations:    orderedmap.NewOrderedMap[string, Enum](),
		structs:         orderedmap.NewOrderedMap[string, Struct](),
	}
}

func (c *Contract) Name() string {
	return c.name
}

// Parents returns the inherited contracts in registration order, with the
// initializer base moved to the front.
func (c *Contract) Parents() []Parent {
	parents := make([]Parent, 0, c.parents.Len())
	for el := c.parents.Front(); el != nil; el = el.Next() {
		parents = append(parents, el.Value)
	}
	slices.SortStableFunc(parents, func(a, b Parent) int {
		return initializerRank(a) - initializerRank(b)
	})
	return parents
}

func initializerRank(p Parent) int {
	if p.Contract.Name == InitializerName {
		return 0
	}
	return 1
}

// Imports returns the unique import paths of parents followed by used libraries
func (c *Contract) Imports() []string {
	paths := NewOrderedSet()
	for _, p := range c.Parents() {
		paths.Add(p.Contract.Path)
	}
	for _, u := range c.using {
		paths.Add(u.Library.Path)
	}
	return paths.Values()
}

func (c *Contract) Using() []Using {
	return c.using
}

// Functions returns every registered function in registration order.
// The returned functions must be treated as read-only.
func (c *Contract) Functions() []*Function {
	return c.functions.values()
}

// Modifiers returns every registered modifier definition in registration order
func (c *Contract) Modifiers() []*Modifier {
	return c.modifiers.values()
}

func (c *Contract) Variables() []string {
	return c.variables.Values()
}

func (c *Contract) ConstructorCode() []string {
	return c.constructorCode
}

func (c *Contract) ConstructorArgs() []FunctionArgument {
	return c.constructorArgs
}

func (c *Contract) Events() []Event {
	return orderedValues(c.events)
}

func (c *Contract) Enumerations() []Enum {
	return orderedValues(c.enumerations)
}

func (c *Contract) Structs() []Struct {
	return orderedValues(c.structs)
}

func orderedValues[T any](m *orderedmap.OrderedMap[string, T]) []T {
	out := make([]T, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// AddParent inherits from parent, replacing the params of an already added parent
func (c *Contract) AddParent(parent ParentContract, params ...Value) {
	if params == nil {
		params = []Value{}
	}
	c.parents.Set(parent.Name, Parent{Contract: parent, Params: params})
	log.Debugf("parent %s added with %d params", parent.Name, len(params))
}

func (c *Contract) AddUsing(library ParentContract, usingFor string) {
	c.using = append(c.using, Using{Library: library, UsingFor: usingFor})
}

func (c *Contract) AddConstructorArgument(arg FunctionArgument) {
	c.constructorArgs = append(c.constructorArgs, arg)
}

func (c *Contract) AddConstructorCode(code string) {
	c.constructorCode = append(c.constructorCode, code)
}

// AddModifier attaches a modifier invocation to the function
func (c *Contract) AddModifier(modifier string, fn BaseFunction) error {
	f, err := c.function(fn)
	if err != nil {
		return err
	}
	f.Modifiers = append(f.Modifiers, modifier)
	return nil
}

// AddOverride marks the function as overriding parent. Optional mutability
// raises the function mutability, it is never lowered.
func (c *Contract) AddOverride(parent string, fn BaseFunction, mutability ...Mutability) error {
	if err := checkMutability(fn.Name, mutability...); err != nil {
		return err
	}
	f, err := c.function(fn)
	if err != nil {
		return err
	}
	f.Override.Add(parent)
	f.raiseMutability(mutability...)
	return nil
}

// AddFunctionCode appends a body line to the function. Optional mutability
// raises the function mutability, it is never lowered.
func (c *Contract) AddFunctionCode(code string, fn BaseFunction, mutability ...Mutability) error {
	if err := checkMutability(fn.Name, mutability...); err != nil {
		return err
	}
	f, err := c.function(fn)
	if err != nil {
		return err
	}
	if err := f.appendCode(code); err != nil {
		return err
	}
	f.raiseMutability(mutability...)
	return nil
}

// SetFunctionBody sets the complete body of a function without code and
// finalizes it. The last given mutability replaces the current one.
func (c *Contract) SetFunctionBody(code []string, fn BaseFunction, mutability ...Mutability) error {
	if err := checkMutability(fn.Name, mutability...); err != nil {
		return err
	}
	f, err := c.function(fn)
	if err != nil {
		return err
	}
	if err := f.setBody(code); err != nil {
		return err
	}
	if len(mutability) > 0 && mutability[len(mutability)-1] != "" {
		f.Mutability = mutability[len(mutability)-1]
	}
	return nil
}

// AddVariable adds a raw declaration line. Identical lines are kept once.
func (c *Contract) AddVariable(code string) {
	c.variables.Add(code)
}

func (c *Contract) AddModifierCode(code string, modifier BaseModifier) error {
	m, err := c.modifier(modifier)
	if err != nil {
		return err
	}
	return m.appendCode(code)
}

func (c *Contract) SetModifierCode(code []string, modifier BaseModifier) error {
	m, err := c.modifier(modifier)
	if err != nil {
		return err
	}
	return m.setBody(code)
}

func (c *Contract) AddEvent(event Event) {
	c.events.Set(event.Name, event)
}

func (c *Contract) AddEnumeration(enumeration Enum) {
	c.enumerations.Set(enumeration.Name, enumeration)
}

func (c *Contract) AddStruct(structure Struct) {
	c.structs.Set(structure.Name, structure)
}

func (c *Contract) function(ref BaseFunction) (*Function, error) {
	sig := signature(ref.Name, ref.Args)
	if c.modifiers.has(sig) {
		return nil, errors.SignatureCollision(sig, "modifier")
	}
	if err := checkMutability(ref.Name, ref.Mutability); err != nil {
		return nil, err
	}

	fn, created := c.functions.upsert(sig, func() *Function { return newFunction(ref) })
	if created {
		log.Debugf("function %s registered", sig)
	}
	return fn, nil
}

func (c *Contract) modifier(ref BaseModifier) (*Modifier, error) {
	sig := signature(ref.Name, ref.Args)
	if c.functions.has(sig) {
		return nil, errors.SignatureCollision(sig, "function")
	}

	m, created := c.modifiers.upsert(sig, func() *Modifier { return newModifier(ref) })
	if created {
		log.Debugf("modifier %s registered", sig)
	}
	return m, nil
}
