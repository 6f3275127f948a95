package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// diffContext is how many bytes of surrounding text each diff hunk
// shows. The target is minified, so a small window already carries a
// full expression of context.
const diffContext = 60

// printDiff renders a per-edit preview against the original text. Each
// edit becomes one hunk: the surrounding window before and after the
// replacement, diffed character-wise.
func printDiff(out io.Writer, src []byte, edits []sites.Edit) {
	sorted := make([]sites.Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	dmp := diffmatchpatch.New()

	for _, edit := range sorted {
		lo := edit.Start - diffContext
		if lo < 0 {
			lo = 0
		}

		hi := edit.End + diffContext
		if hi > len(src) {
			hi = len(src)
		}

		before := string(src[lo:hi])
		after := string(src[lo:edit.Start]) + edit.Replacement + string(src[edit.End:hi])

		fmt.Fprintf(out, "@@ byte %d..%d @@\n", edit.Start, edit.End)

		diffs := dmp.DiffMain(before, after, false)
		diffs = dmp.DiffCleanupSemantic(diffs)

		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				color.New(color.FgGreen).Fprintf(out, "+%s", d.Text)
			case diffmatchpatch.DiffDelete:
				color.New(color.FgRed).Fprintf(out, "-%s", d.Text)
			case diffmatchpatch.DiffEqual:
				fmt.Fprint(out, d.Text)
			}
		}

		fmt.Fprintln(out)
	}
}
