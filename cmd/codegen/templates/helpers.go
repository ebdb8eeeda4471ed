package templates

import (
	"strconv"
	"strings"
)

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

func signalName(count int) string {
	return "Signal" + strconv.Itoa(count)
}

// typeParams is the type parameter list of a declaration, "[A0, A1 any]".
func typeParams(count int) string {
	if count == 0 {
		return ""
	}
	return "[" + prefixedStrings("A", count) + " any]"
}

// typeArgs instantiates the declaration in a receiver, "[A0, A1]".
func typeArgs(count int) string {
	if count == 0 {
		return ""
	}
	return "[" + prefixedStrings("A", count) + "]"
}

func params(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("a" + n + " A" + n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func argumentCount(count int) string {
	switch count {
	case 0:
		return "no arguments"
	case 1:
		return "1 argument"
	default:
		return strconv.Itoa(count) + " arguments"
	}
}
