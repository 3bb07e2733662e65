package builder

import (
	"strings"
)

const indentWidth = 4

// Line is one element of rendered source: a Text line, a nested Block
// indented one level deeper than its parent, or a blank separator.
type Line interface {
	isLine()
}

// Text is a single line of source without indentation
type Text string

// Block is a group of lines
type Block []Line

type blankLine struct{}

func (Text) isLine()      {}
func (Block) isLine()     {}
func (blankLine) isLine() {}

var blank Line = blankLine{}

// textBlock wraps raw lines into a block
func textBlock(lines []string) Block {
	block := make(Block, len(lines))
	for i, line := range lines {
		block[i] = Text(line)
	}
	return block
}

// SpaceBetween joins the non-empty groups with exactly one blank line between them
func SpaceBetween(groups ...Block) Block {
	out := Block{}
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, blank)
		}
		out = append(out, group...)
	}
	return out
}

// FormatLines flattens nested lines into text. Top level lines are not
// indented and every nested block adds one indentation level. Blank
// separators are never indented. The result ends with a newline.
func FormatLines(lines ...Line) string {
	var out []string
	flatten(0, lines, &out)
	return strings.Join(out, "\n") + "\n"
}

func flatten(depth int, lines []Line, out *[]string) {
	for _, line := range lines {
		switch l := line.(type) {
		case blankLine:
			*out = append(*out, "")
		case Text:
			*out = append(*out, strings.Repeat(" ", depth*indentWidth)+string(l))
		case Block:
			flatten(depth+1, l, out)
		}
	}
}
