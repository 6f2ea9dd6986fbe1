package cache

import "strings"

const (
	GlobalKeyPrefix = "trivia"
)

// GenerateCacheKey joins the prefix, object type and identifier with ":".
// paramsKey, when given, are joined by "_" and appended as a final segment.
func GenerateCacheKey(objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// CategoryMapKey is where the id-to-type category map is cached.
func CategoryMapKey() string {
	return GenerateCacheKey("category", "map", "all")
}
