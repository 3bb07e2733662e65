package blueprint

import (
	"strings"

	"github.com/tliron/commonlog"

	"solgen/grammar"
	"solgen/internal/contract"
)

var log = commonlog.GetLogger("solgen.blueprint")

// Build applies the blueprint to a new contract. Incomplete entries are
// skipped. Enumerations, structs, events and modifier definitions are added
// as preformatted variable lines.
func Build(bp *Blueprint) (*contract.Contract, error) {
	c := contract.New(bp.Name)

	for _, p := range valid("parent", bp.Parents) {
		parent := contract.ParentContract{Name: p.Name, Path: p.Path}
		params, err := grammar.ParseParams(p.Params)
		if err != nil {
			return nil, err
		}
		c.AddParent(parent, params...)
	}

	for _, e := range valid("enum", bp.Enums) {
		c.AddVariable(EnumToString(e))
	}
	for _, s := range valid("struct", bp.Structs) {
		c.AddVariable(StructToString(s))
	}
	for _, v := range valid("variable", bp.Variables) {
		c.AddVariable(VariableToString(v))
	}
	for _, e := range valid("event", bp.Events) {
		c.AddVariable(EventToString(e))
	}

	if bp.ConstructorCode != "" {
		for _, line := range strings.Split(bp.ConstructorCode, "\n") {
			c.AddConstructorCode(line)
		}
	}

	for _, m := range valid("modifier", bp.Modifiers) {
		c.AddVariable(ModifierToString(m))
	}

	for _, f := range valid("function", bp.Functions) {
		if err := applyFunction(c, f); err != nil {
			return nil, err
		}
	}

	for _, u := range valid("using", bp.Usings) {
		c.AddUsing(contract.ParentContract{Name: u.Name, Path: u.Path}, u.UsingFor)
	}

	return c, nil
}

func applyFunction(c *contract.Contract, f Function) error {
	ref := f.Base()
	for _, line := range strings.Split(f.Code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := c.AddFunctionCode(line, ref); err != nil {
			return err
		}
	}
	for _, modifier := range f.Modifiers {
		if err := c.AddModifier(modifier, ref); err != nil {
			return err
		}
	}
	for _, parent := range f.Overrides {
		if err := c.AddOverride(parent, ref); err != nil {
			return err
		}
	}
	return nil
}
