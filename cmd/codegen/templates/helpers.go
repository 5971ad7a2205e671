package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings returns "p0, p1, ..." with count entries.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// indexed returns "v[0], v[1], ..." with count entries.
func indexed(slice string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(slice)
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func repeated(s string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func plural(count int) string {
	if count == 1 {
		return "dependency"
	}
	return "dependencies"
}
