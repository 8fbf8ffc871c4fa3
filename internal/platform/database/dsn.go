package database

import (
	"net/url"
	"strings"
)

// normalizePostgresURL turns on lib/pq binary parameters so queries with
// arguments skip the extra prepare round trip.
func normalizePostgresURL(raw string, binaryParameters bool) string {
	if !binaryParameters {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("binary_parameters") == "" {
		query.Set("binary_parameters", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// sqliteDSN enables foreign keys, a busy timeout and a parseable time
// format unless the caller set them explicitly.
func sqliteDSN(raw string) string {
	path, rawQuery, _ := strings.Cut(strings.TrimSpace(raw), "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	if !hasPragma(query["_pragma"], "foreign_keys") {
		query.Add("_pragma", "foreign_keys(1)")
	}
	if !hasPragma(query["_pragma"], "busy_timeout") {
		query.Add("_pragma", "busy_timeout(5000)")
	}
	if query.Get("_time_format") == "" {
		query.Set("_time_format", "sqlite")
	}

	return path + "?" + query.Encode()
}

func hasPragma(pragmas []string, name string) bool {
	for _, p := range pragmas {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(p)), name) {
			return true
		}
	}
	return false
}

func dbNameFromURL(driver Driver, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if driver == DriverSQLite {
		path, _, _ := strings.Cut(trimmed, "?")
		return strings.TrimPrefix(path, "file:")
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
