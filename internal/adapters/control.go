package adapters

import (
	"bufio"
	"io"
	"strings"
)

// controlStanza is one paragraph of a Debian control-style file, keyed by
// lower-cased field name. Continuation lines are folded into the field.
type controlStanza map[string]string

func (s controlStanza) get(field string) string {
	return strings.TrimSpace(s[strings.ToLower(field)])
}

// readControlStanzas parses the paragraph format shared by
// /var/lib/dpkg/status and /var/lib/apt/extended_states.
func readControlStanzas(r io.Reader) ([]controlStanza, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var stanzas []controlStanza
	current := controlStanza{}
	lastField := ""
	flush := func() {
		if len(current) > 0 {
			stanzas = append(stanzas, current)
		}
		current = controlStanza{}
		lastField = ""
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if lastField != "" {
				current[lastField] += "\n" + strings.TrimSpace(line)
			}
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lastField = strings.ToLower(strings.TrimSpace(name))
		current[lastField] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return stanzas, nil
}
