package ir

// Flatten returns the given elements and all their nested element
// descendants, depth-first in render order.
func Flatten(elements []*Element) []*Element {
	var out []*Element

	for _, el := range elements {
		out = append(out, el)

		var nested []*Element

		for _, child := range el.Children {
			if childEl, ok := child.(*Element); ok {
				nested = append(nested, childEl)
			}
		}

		out = append(out, Flatten(nested)...)
	}

	return out
}
