package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Asset role names with well-known meaning. Extraction helpers consult
// them in the order listed; anything else is matched generically.
var (
	messageRoles = []string{"message", "brief", "prompt"}
	mediaRoles   = []string{"media", "media_url", "video", "image"}
)

// PromotedOfferingsRole is the asset role carrying structured data about
// the products a generative build should promote.
const PromotedOfferingsRole = "promoted_offerings"

// ExtractMessage picks the free-text brief for a generative build. Asset
// roles win over inputs, inputs win over the synthesized fallback, so
// both the create and the update path see exactly the same message for
// the same descriptor.
func ExtractMessage(name string, assets map[string]Asset, inputs map[string]any) string {
	for _, role := range messageRoles {
		if a, ok := assets[role]; ok {
			if s := strings.TrimSpace(a.Content); s != "" {
				return s
			}
		}
	}
	for _, key := range messageRoles {
		if s := stringInput(inputs, key); s != "" {
			return s
		}
	}
	for _, key := range sortedKeys(inputs) {
		if s := stringInput(inputs, key); s != "" {
			return s
		}
	}
	return fmt.Sprintf("Create a creative for: %s", name)
}

// ExtractPrimaryURL picks the caller-supplied media URL, preferring the
// well-known media roles and falling back to any asset that carries a
// URL, in sorted role order so the choice is deterministic.
func ExtractPrimaryURL(assets map[string]Asset) string {
	if a, ok := primaryMediaAsset(assets); ok {
		return a.URL
	}
	return ""
}

// ExtractDimensions returns the width and height of the primary media
// asset, zero when the caller supplied none.
func ExtractDimensions(assets map[string]Asset) (width, height int) {
	if a, ok := primaryMediaAsset(assets); ok {
		return a.Width, a.Height
	}
	return 0, 0
}

// ExtractPromotedOfferings returns the structured promoted-offerings
// payload, nil when absent.
func ExtractPromotedOfferings(assets map[string]Asset) map[string]any {
	a, ok := assets[PromotedOfferingsRole]
	if !ok || len(a.Fields) == 0 {
		return nil
	}
	return a.Fields
}

func primaryMediaAsset(assets map[string]Asset) (Asset, bool) {
	for _, role := range mediaRoles {
		if a, ok := assets[role]; ok && a.URL != "" {
			return a, true
		}
	}
	for _, role := range sortedKeys(assets) {
		if a := assets[role]; a.URL != "" {
			return a, true
		}
	}
	return Asset{}, false
}

func stringInput(inputs map[string]any, key string) string {
	v, ok := inputs[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
