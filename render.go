package parsby

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// renderRow is one node queued for display, with its depth in the
// collapsed tree. Render emits rows in pre-order walk order; it reads
// neither depth nor col when laying them out.
type renderRow struct {
	node  *TreeNode
	depth int
	col   int
}

// Render renders tree (rooted at the node passed in, typically
// ParseFailure.Tree) against the original source src as a multi-line
// diagnostic block: the source line, one marker row per node spanning
// the characters it covered, and a label column naming each node and
// its outcome. width clips the echoed source line; the rest is not
// wrapped onto further lines.
func Render(tree *TreeNode, src string, width int) string {
	if width <= 0 {
		width = 120
	}
	collapsed := collapseSplices(tree)

	var rows []*renderRow
	var walk func(n *TreeNode, depth int)
	walk = func(n *TreeNode, depth int) {
		rows = append(rows, &renderRow{node: n, depth: depth})
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(collapsed, 0)

	maxSpanEnd := 0
	for _, r := range rows {
		if r.node.End > maxSpanEnd {
			maxSpanEnd = r.node.End
		}
	}
	labelCol := maxSpanEnd + 2

	var out strings.Builder
	out.WriteString(clipSourceLine(src, width))
	out.WriteString("\n")

	used := map[int]bool{}
	seen := treeset.NewWith(utils.StringComparator)
	for _, r := range rows {
		if r.node.Outcome == OutcomeFailure && len(r.node.Children) == 0 {
			key := leafFailureKey(r.node)
			if seen.Contains(key) {
				continue
			}
			seen.Add(key)
		}
		out.WriteString(renderMarkerRow(r.node, labelCol, used))
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// leafFailureKey hashes the fields that make two leaf failure rows
// indistinguishable on the page, so a wide Alt fan that rejects the same
// way at the same position many times over renders that rejection once.
func leafFailureKey(n *TreeNode) string {
	key, err := structhash.Hash(struct {
		Label string
		Start int
		End   int
	}{Label: n.Label, Start: n.Start, End: n.End}, 1)
	if err != nil {
		// structhash only fails on unhashable field types; our key struct
		// has none, so fall back to a value that never matches instead
		// of panicking inside a diagnostic renderer.
		return fmt.Sprintf("%p", n)
	}
	return key
}

func clipSourceLine(src string, width int) string {
	r := []rune(src)
	if len(r) <= width {
		return string(r)
	}
	return string(r[:width])
}

// renderMarkerRow draws one node's span marker ("\-/" if it covers more
// than one character, "V" if it covers exactly one, a bare "|" if it is
// zero-width) followed by its outcome and label, all on one row. used
// records the column each earlier row claimed in this render: a row
// claims the first free column at or after its Start and writes one
// "\" after its marker for every taken column it skips. No vertical
// connector lines are drawn.
func renderMarkerRow(n *TreeNode, labelCol int, used map[int]bool) string {
	var line strings.Builder
	for i := 0; i < n.Start; i++ {
		line.WriteByte(' ')
	}
	switch {
	case n.End-n.Start > 1:
		line.WriteString("\\")
		for i := n.Start + 1; i < n.End-1; i++ {
			line.WriteString("-")
		}
		line.WriteString("/")
	case n.End-n.Start == 1:
		line.WriteString("V")
	default:
		line.WriteString("|")
	}

	col := n.Start
	for used[col] {
		col++
		line.WriteString("\\")
	}
	used[col] = true

	for line.Len() < labelCol {
		line.WriteString(" ")
	}
	label := n.Label
	if label == "" {
		label = "<anonymous>"
	}
	line.WriteString(fmt.Sprintf("%s %s [%d,%d)", n.Outcome, label, n.Start, n.End))
	return line.String()
}
