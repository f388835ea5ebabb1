package vector

import (
	"io"
	"strings"
)

// Inspect writes the description of h and, indented beneath it, those of
// the handles it is built from. A materialized lazy view lists its source
// and its cache.
func Inspect(w io.Writer, h *Handle) error {
	var sb strings.Builder
	inspect(&sb, h, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func inspect(sb *strings.Builder, h *Handle, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(h.Describe())
	sb.WriteByte('\n')

	if h.class.Children == nil {
		return
	}
	for _, child := range h.class.Children(h.state) {
		inspect(sb, child, depth+1)
	}
}
