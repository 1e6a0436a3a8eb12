package skill

import (
	"fmt"
	"strings"
)

// CloneURL expands a record's install locator into a git clone URL.
// Accepted forms: full http(s):// or git@ URLs (passed through) and the
// "owner/repo" GitHub shorthand used by registry files.
func CloneURL(source string) (string, error) {
	s := strings.TrimSpace(source)
	if s == "" {
		return "", fmt.Errorf("skill has no install source")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "git@") {
		return s, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("invalid install source %q (expected owner/repo or a git URL)", source)
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", parts[0], parts[1]), nil
}
