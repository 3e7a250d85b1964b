// File: internal/catalog/resolve.go
// Brief: Lookup and filter helpers over component lists.

package catalog

// Resolve returns the component with the given id, or nil when no entry
// matches. A miss is not an error; callers decide how to degrade.
func Resolve(items []Component, id string) *Component {
	if id == "" {
		return nil
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// FilterByDomain keeps entries restricted to the given domain plus entries
// usable anywhere ("any", "multi", or no restriction at all).
func FilterByDomain(items []Component, domain string) []Component {
	if domain == "" {
		return items
	}
	var out []Component
	for _, item := range items {
		switch item.Domain {
		case domain, DomainAny, DomainMulti, "":
			out = append(out, item)
		}
	}
	return out
}

// FilterByRoleTag keeps entries whose role-tag set contains tag.
func FilterByRoleTag(items []Component, tag string) []Component {
	var out []Component
	for _, item := range items {
		if item.HasRoleTag(tag) {
			out = append(out, item)
		}
	}
	return out
}
