package contract

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"solgen/internal/errors"
)

// signature is the identity of a function or modifier: its name and the
// ordered names of its parameters. Parameter types do not take part.
func signature(name string, args []FunctionArgument) string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = arg.Name
	}
	return name + "(" + strings.Join(names, ",") + ")"
}

// signatureStore keeps entries keyed by signature in registration order
type signatureStore[T any] struct {
	entries *orderedmap.OrderedMap[string, *T]
}

func newSignatureStore[T any]() *signatureStore[T] {
	return &signatureStore[T]{entries: orderedmap.NewOrderedMap[string, *T]()}
}

func (s *signatureStore[T]) has(sig string) bool {
	_, ok := s.entries.Get(sig)
	return ok
}

// upsert returns the entry for sig, registering the result of create when missing
func (s *signatureStore[T]) upsert(sig string, create func() *T) (entry *T, created bool) {
	if got, ok := s.entries.Get(sig); ok {
		return got, false
	}
	entry = create()
	s.entries.Set(sig, entry)
	return entry, true
}

func (s *signatureStore[T]) values() []*T {
	out := make([]*T, 0, s.entries.Len())
	for el := s.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

func newFunction(ref BaseFunction) *Function {
	fn := &Function{
		BaseFunction: ref,
		Override:     NewOrderedSet(),
		Modifiers:    []string{},
		Code:         []string{},
	}
	if fn.Kind == "" {
		fn.Kind = Public
	}
	if fn.Mutability == "" {
		fn.Mutability = NonPayable
	}
	return fn
}

// appendCode adds one body line unless the body was already set
func (f *Function) appendCode(line string) error {
	if f.Final {
		return errors.FunctionFinalized(f.Name)
	}
	f.Code = append(f.Code, line)
	return nil
}

// setBody replaces the empty body with lines and finalizes the function
func (f *Function) setBody(lines []string) error {
	if f.Final || len(f.Code) > 0 {
		return errors.FunctionBodySet(f.Name)
	}
	f.Code = append(f.Code, lines...)
	f.Final = true
	return nil
}

// checkMutability rejects unknown values. The empty value means unset.
func checkMutability(name string, mutability ...Mutability) error {
	for _, m := range mutability {
		if m != "" && !m.IsValid() {
			return errors.InvalidMutability(name, string(m))
		}
	}
	return nil
}

// raiseMutability never lowers the recorded mutability
func (f *Function) raiseMutability(mutability ...Mutability) {
	for _, m := range mutability {
		f.Mutability = MaxMutability(f.Mutability, m)
	}
}

func newModifier(ref BaseModifier) *Modifier {
	return &Modifier{BaseModifier: ref, Code: []string{}}
}

func (m *Modifier) appendCode(line string) error {
	if m.Final {
		return errors.ModifierCodeSet(m.Name)
	}
	m.Code = append(m.Code, line)
	return nil
}

func (m *Modifier) setBody(lines []string) error {
	if m.Final || len(m.Code) > 0 {
		return errors.ModifierCodeSet(m.Name)
	}
	m.Code = append(m.Code, lines...)
	m.Final = true
	return nil
}
