package todoswamp

import (
	"strconv"
	"strings"
)

// FormatItem renders an item as a single line:
// the ID, the quoted description and the tab-separated #tags.
// The tag section is omitted entirely when the item has no tags.
func FormatItem(item *Item) string {
	var b strings.Builder
	b.WriteString(formatID(item.ID))
	b.WriteString(` "`)
	b.WriteString(item.Description)
	b.WriteString(`"`)
	for i, tag := range item.Tags {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte('\t')
		}
		b.WriteByte('#')
		b.WriteString(tag)
	}
	return b.String()
}

// FormatResult renders a result as newline-separated lines without a
// trailing newline. A FoundResult with no items renders as "".
func FormatResult(r Result) string {
	switch r := r.(type) {
	case *AddedResult:
		return FormatItem(r.Item)
	case *DoneResult:
		return "Done"
	case *FoundResult:
		lines := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			lines = append(lines, FormatItem(item))
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

func formatID(id ID) string {
	return strconv.Itoa(int(id))
}
