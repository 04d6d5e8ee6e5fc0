// Package formats holds the value-level predicates referenced by `format:`
// keywords in the composed manifest schema. The table is assembled from an
// explicit registration list rather than by introspecting the package, and
// the file depends only on the standard library so the vendoring pipeline
// can copy it verbatim into standalone artifacts.
package formats

import (
	"net/mail"
	"net/url"
	"regexp"
)

// FormatFunc reports whether a string value satisfies a named format.
type FormatFunc func(value string) bool

var (
	projectNameRegex = regexp.MustCompile(`(?i)^([a-z0-9]|[a-z0-9][a-z0-9._-]*[a-z0-9])$`)
	versionRegex     = regexp.MustCompile(`(?i)^v?\d+(\.\d+)*((a|b|rc)\d+)?(\.post\d+)?(\.dev\d+)?$`)
	dependencyRegex  = regexp.MustCompile(`(?i)^[a-z0-9]([a-z0-9._-]*[a-z0-9])?\s*(\[[a-z0-9,._ -]+\])?\s*([<>=!~][^;]*)?(;.*)?$`)
)

// ProjectName validates a distributable project name.
func ProjectName(value string) bool {
	return projectNameRegex.MatchString(value)
}

// Version validates a project version string.
func Version(value string) bool {
	return versionRegex.MatchString(value)
}

// Dependency validates a dependency requirement specifier.
func Dependency(value string) bool {
	return dependencyRegex.MatchString(value)
}

// URL validates an absolute URL.
func URL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Email validates an email address.
func Email(value string) bool {
	_, err := mail.ParseAddress(value)
	return err == nil
}

// Builtin returns the built-in format table. The registration list below is
// the single source of truth for which predicates exist.
func Builtin() map[string]FormatFunc {
	return map[string]FormatFunc{
		"project-name": ProjectName,
		"version":      Version,
		"dependency":   Dependency,
		"url":          URL,
		"email":        Email,
	}
}
