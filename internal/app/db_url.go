package app

import (
	"net/url"
	"strings"
)

const preparedBinaryOption = "disable_prepared_binary_result"

// normalizeDBURL applies the lib/pq options the deployment toggles ask for.
// Both URL ("postgres://...") and keyword/value DSN forms are accepted; an
// option already present in the DSN wins over the toggle.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !disablePreparedBinaryResult {
		return raw
	}

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get(preparedBinaryOption) != "" {
			return raw
		}
		query.Set(preparedBinaryOption, "yes")
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if strings.Contains(raw, preparedBinaryOption+"=") {
		return raw
	}
	return raw + " " + preparedBinaryOption + "=yes"
}

// dbNameFromURL extracts the database name for span attribution. Returns ""
// when the DSN names no database.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		return strings.Trim(parsed.Path, "/")
	}

	for _, pair := range strings.Fields(raw) {
		key, value, ok := strings.Cut(pair, "=")
		if ok && key == "dbname" {
			return strings.Trim(value, `"'`)
		}
	}

	return ""
}
