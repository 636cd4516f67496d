package topsis

import "strings"

// ParseParams splits the comma-separated weights and impacts strings into
// trimmed tokens. Token counts and values are checked by Validate; only
// structurally empty parameters are rejected here.
func ParseParams(weights, impacts string) ([]string, []string, error) {
	ws, err := splitList("weights", weights)
	if err != nil {
		return nil, nil, err
	}
	is, err := splitList("impacts", impacts)
	if err != nil {
		return nil, nil, err
	}
	return ws, is, nil
}

func splitList(name, s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, newError(KindParse, "%s must not be empty", name)
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens, nil
}
