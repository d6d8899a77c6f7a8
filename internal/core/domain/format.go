package domain

import "strings"

// FormatRef identifies a creative format: the registry that defines it
// (Namespace, a base URL) and the format id within that registry. An
// empty Namespace refers to the default registry configured on the
// server.
type FormatRef struct {
	Namespace string `json:"agent_url,omitempty"`
	ID        string `json:"id"`
}

func (r FormatRef) String() string {
	if r.Namespace == "" {
		return r.ID
	}
	return r.Namespace + "#" + r.ID
}

// CacheKey is the lookup key for the format cache. Namespaces that only
// differ by routing suffix map to the same key.
func (r FormatRef) CacheKey() string {
	return NormalizeNamespace(r.Namespace) + "#" + r.ID
}

// FormatType distinguishes how a creative of this format is produced.
type FormatType string

const (
	// FormatTypeStatic formats carry finished media; they are previewed,
	// never generated.
	FormatTypeStatic FormatType = "static"
	// FormatTypeGenerative formats are produced by a build agent from a
	// brief.
	FormatTypeGenerative FormatType = "generative"
)

// FormatSpec is a format definition fetched from a registry.
type FormatSpec struct {
	Namespace string     `json:"agent_url,omitempty"`
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Type      FormatType `json:"type,omitempty"`
	// OutputFormatIDs lists the concrete format ids a generative format
	// can produce. A build result naming one of these satisfies the
	// requested format.
	OutputFormatIDs []string `json:"output_format_ids,omitempty"`
}

// Ref returns the reference this spec answers to.
func (s *FormatSpec) Ref() FormatRef {
	return FormatRef{Namespace: s.Namespace, ID: s.ID}
}

// IsGenerative reports whether creatives of this format are produced by
// a build agent rather than uploaded as finished media. Declaring output
// formats marks the spec generative even when its type field is unset;
// registries advertise the capability through the declaration.
func (s *FormatSpec) IsGenerative() bool {
	return s.Type == FormatTypeGenerative || len(s.OutputFormatIDs) > 0
}

// AcceptsOutput reports whether a build that produced output format id
// got satisfies a request for this format: either the id matches
// directly or it is one of the declared output formats.
func (s *FormatSpec) AcceptsOutput(got string) bool {
	if got == s.ID {
		return true
	}
	for _, id := range s.OutputFormatIDs {
		if got == id {
			return true
		}
	}
	return false
}

// routingSuffix is the well-known path segment registries append for
// protocol routing. It carries no identity, so comparisons strip it.
const routingSuffix = "/mcp"

// NormalizeNamespace canonicalizes a registry namespace for comparison:
// trailing slashes and the routing suffix are not part of the registry's
// identity.
func NormalizeNamespace(ns string) string {
	ns = strings.TrimRight(ns, "/")
	ns = strings.TrimSuffix(ns, routingSuffix)
	return strings.TrimRight(ns, "/")
}

// SameFormat reports whether two references identify the same format.
// Namespaces are compared normalized, ids exactly.
func SameFormat(a, b FormatRef) bool {
	return a.ID == b.ID && NormalizeNamespace(a.Namespace) == NormalizeNamespace(b.Namespace)
}
