package content

// All is the filter selection that passes every record through.
const All = "All"

// Filter narrows items to the records whose key equals selection, keeping
// source order. All, or an empty selection, returns items unmodified.
func Filter[T any](items []T, selection string, key func(T) string) []T {
	if selection == "" || selection == All {
		return items
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == selection {
			matched = append(matched, item)
		}
	}
	return matched
}

// Options returns the filter choices for items: All followed by each distinct
// non-empty key in first-seen order.
func Options[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool)
	options := []string{All}
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		options = append(options, k)
	}
	return options
}
