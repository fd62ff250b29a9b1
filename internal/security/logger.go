package security

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sgaunet/bullets"
)

// DebugAuth logs which credential and endpoint a client was built with.
// Details are passed through [SanitizeMap] first.
//
//	DebugAuth(logger, "GitHub", map[string]string{
//	    "token":   cfg.Token.String(),
//	    "api_url": cfg.APIURL,
//	})
func DebugAuth(logger *bullets.Logger, platform string, details map[string]string) {
	if logger == nil {
		return
	}

	raw := make(map[string]any, len(details))
	for k, v := range details {
		raw[k] = v
	}
	sanitized := SanitizeMap(raw)

	keys := make([]string, 0, len(sanitized))
	for k := range sanitized {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, sanitized[k]))
	}
	logger.Debug(fmt.Sprintf("Using %s authentication: %s", platform, strings.Join(pairs, " ")))
}
