package security

import (
	"regexp"
	"strings"
)

var (
	gitlabTokenRegex = regexp.MustCompile(`glpat-[a-zA-Z0-9_-]{6,}`)
	githubTokenRegex = regexp.MustCompile(`(gh[opsu]_[a-zA-Z0-9]{20,}|github_pat_[a-zA-Z0-9_]{20,})`)
	authHeaderRegex  = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|token|basic)\s+[a-zA-Z0-9+/=_.-]{10,}`)
	bearerTokenRegex = regexp.MustCompile(`\b[A-Za-z0-9+/=]{40,200}\b`)
)

// SanitizeString redacts GitHub and GitLab tokens, authorization headers and
// long opaque strings from s.
func SanitizeString(s string) string {
	s = gitlabTokenRegex.ReplaceAllString(s, "[gitlab-token-redacted]")
	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")

	if strings.Contains(s, "-token-redacted]") {
		return s
	}
	return bearerTokenRegex.ReplaceAllString(s, "[token-redacted]")
}

// Redact removes the literal token value from s, then applies [SanitizeString].
// API clients sometimes echo request details back in error text.
func Redact(s string, token SecureToken) string {
	if !token.IsEmpty() {
		s = strings.ReplaceAll(s, token.Value(), token.String())
	}
	return SanitizeString(s)
}

// SanitizeMap redacts values whose keys look sensitive and sanitizes the
// remaining string values. Returns nil if m is nil.
func SanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	sensitiveKeys := []string{
		"token", "password", "secret", "api_key", "apikey",
		"auth", "credential", "authorization",
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		lowerKey := strings.ToLower(k)
		isSensitive := false
		for _, sensitiveKey := range sensitiveKeys {
			if strings.Contains(lowerKey, sensitiveKey) {
				isSensitive = true
				break
			}
		}

		switch {
		case isSensitive:
			result[k] = maskRedacted
		default:
			if str, ok := v.(string); ok {
				result[k] = SanitizeString(str)
			} else {
				result[k] = v
			}
		}
	}

	return result
}
