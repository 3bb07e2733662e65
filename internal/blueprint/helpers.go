package blueprint

import (
	"strings"
)

const spaceCount = 4

func spacing(count int) string {
	return strings.Repeat(" ", count*spaceCount)
}

// ModifierToString renders a modifier definition with its code followed by
// the placeholder statement. Code lines are indented for the contract body.
func ModifierToString(m Modifier) string {
	args := make([]string, len(m.Args))
	for i, arg := range m.Args {
		args[i] = arg.Type + " " + arg.Name
	}
	code := strings.Join(strings.Split(m.Code, "\n"), "\n"+spacing(2))
	return "modifier " + m.Name + "(" + strings.Join(args, ", ") + ") {\n" +
		spacing(2) + code + "\n" +
		spacing(2) + "_;\n" +
		spacing(1) + "}"
}

func VariableToString(v Variable) string {
	if v.DataType == "mapping" {
		return v.DataType + " (" + v.MappingKeyType + "=>" + v.MappingValueType + ") " + v.Visibility + " " + v.Name + ";"
	}
	if v.Value != "" {
		return v.DataType + " " + v.Visibility + " " + v.Name + " = " + v.Value + ";"
	}
	return v.DataType + " " + v.Visibility + " " + v.Name + ";"
}

func EnumToString(e Enum) string {
	return "enum " + e.Name + "{ " + e.Values + " }\n"
}

// EventToString renders an event declaration, dropping definitions without
// a name or type.
func EventToString(e Event) string {
	props := []string{}
	for _, def := range e.Definition {
		if def.Name == "" || def.Type == "" {
			continue
		}
		if def.Indexed {
			props = append(props, def.Type+" indexed "+def.Name)
		} else {
			props = append(props, def.Type+" "+def.Name)
		}
	}
	return "event " + e.Name + "(" + strings.Join(props, ", ") + ");"
}

func StructToString(s Struct) string {
	fields := []string{}
	for _, def := range s.Definition {
		if def.Name == "" || def.Type == "" {
			continue
		}
		fields = append(fields, def.Type+" "+def.Name+";")
	}
	return "struct " + s.Name + "{\n" +
		spacing(2) + strings.Join(fields, "\n"+spacing(2)) + "\n" +
		spacing(1) + "}\n"
}
