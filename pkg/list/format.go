package list

import (
	"fmt"
	"strings"
)

// String renders the list as "<list size=N, data={ v1, v2, ..., vN }>".
func (l *List[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<list size=%d, data={ ", l.size)
	sep := ""
	for v := range l.All() {
		b.WriteString(sep)
		fmt.Fprint(&b, v)
		sep = ", "
	}
	if sep != "" {
		b.WriteByte(' ')
	}
	b.WriteString("}>")
	return b.String()
}
