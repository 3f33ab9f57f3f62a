package documentRepo

import (
	"fmt"
	"strings"
)

// splitCollectionPath validates a slash-separated collection path such as
// "users/u123/orders". A collection path always has an odd number of segments.
func splitCollectionPath(path string) ([]string, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments)%2 == 0 {
		return nil, fmt.Errorf("%w: %q has an even number of segments", ErrInvalidCollectionPath, path)
	}
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidCollectionPath, path)
		}
	}
	return segments, nil
}

// flatCollectionName maps a nested collection path onto a single flat name
// for stores without subcollections ("users/u123/orders" -> "users.u123.orders").
func flatCollectionName(path string) (string, error) {
	segments, err := splitCollectionPath(path)
	if err != nil {
		return "", err
	}
	return strings.Join(segments, "."), nil
}

// copyFields returns a shallow copy so drivers never share the caller's map.
func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
