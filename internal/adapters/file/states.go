package file

import (
	"encoding/json"
	"strings"
)

// WriteStates writes the reachable-states listing as a JSON object mapping
// each state name to itself, in first-visit order. Standard library JSON
// encoding sorts map keys, so the object is assembled by hand.
func WriteStates(path string, names []string) error {
	return WriteAtomic(path, []byte(encodeStates(names)))
}

// WriteLines writes one entry per line, for callers that prefer a plain
// listing over the JSON object form.
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return WriteAtomic(path, []byte(sb.String()))
}

func encodeStates(names []string) string {
	if len(names) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, name := range names {
		quoted, _ := json.Marshal(name)
		sb.WriteString("    ")
		sb.Write(quoted)
		sb.WriteString(": ")
		sb.Write(quoted)
		if i < len(names)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
