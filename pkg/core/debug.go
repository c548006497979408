package core

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Describer lets a widget add a short summary of its configuration to Dump.
type Describer interface {
	Describe() string
}

// Dump writes one line per widget below root, indented by depth.
func Dump(w io.Writer, root Widget) error {
	if isNil(root) {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	t := root.base().tree
	var err error
	t.Walk(root, func(node Widget, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), DescribeWidget(node))
	})
	return err
}

// DumpString returns Dump's output as a string.
func DumpString(root Widget) string {
	var sb strings.Builder
	_ = Dump(&sb, root)
	return sb.String()
}

// DescribeWidget returns the one-line summary Dump prints for w.
func DescribeWidget(w Widget) string {
	var sb strings.Builder
	sb.WriteString(typeName(w))
	sb.WriteByte(' ')
	sb.WriteString(w.Handle().String())
	if k := w.Key(); !k.IsNil() {
		fmt.Fprintf(&sb, " key=%s", k)
	}
	pos, size := w.Position(), w.Size()
	fmt.Fprintf(&sb, " pos=%g,%g size=%gx%g", pos.X, pos.Y, size.Width, size.Height)
	if d, ok := w.(Describer); ok {
		if s := d.Describe(); s != "" {
			sb.WriteByte(' ')
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func typeName(w Widget) string {
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
