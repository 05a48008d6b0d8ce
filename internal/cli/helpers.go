package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTxCount parses the positional transaction count argument. Domain
// validation (positivity) happens in the service layer; here we only require
// an integer.
func parseTxCount(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("transaction count must be an integer, got %q", arg)
	}
	return n, nil
}

// splitSystems parses a comma-separated system list, dropping empty entries.
func splitSystems(arg string) []string {
	parts := strings.Split(arg, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
