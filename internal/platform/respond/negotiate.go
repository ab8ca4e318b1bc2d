package respond

import (
	"strings"

	"github.com/danielgtaylor/huma/v2/negotiation"
)

const (
	mediaJSON   = "application/json"
	mediaCBOR   = "application/cbor"
	problemJSON = "application/problem+json"
	problemCBOR = "application/problem+cbor"
)

// problemFormats lists the representations a problem can be rendered in. JSON
// comes first so it is the fallback for wildcards and unsupported types.
var problemFormats = []string{mediaJSON, problemJSON, mediaCBOR, problemCBOR}

// prefersCBOR reports whether the Accept header ranks a CBOR media type above
// JSON. Each element's q-value counts and q=0 excludes a type. On equal q the
// element listed first wins. Media types are compared case-insensitively.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	switch negotiation.SelectQValue(strings.ToLower(accept), problemFormats) {
	case mediaCBOR, problemCBOR:
		return true
	default:
		return false
	}
}
