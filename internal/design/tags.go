// File: internal/design/tags.go
// Brief: Insertion-ordered role tag set.

package design

// TagSet is an insertion-ordered string set. Role tag union uses it so
// reported tag order is first-seen and reproducible.
type TagSet struct {
	order []string
	seen  map[string]bool
}

// Add appends tags not seen before, keeping first-seen order.
func (s *TagSet) Add(tags ...string) {
	for _, tag := range tags {
		if tag == "" || s.seen[tag] {
			continue
		}
		if s.seen == nil {
			s.seen = map[string]bool{}
		}
		s.seen[tag] = true
		s.order = append(s.order, tag)
	}
}

// Contains reports membership.
func (s *TagSet) Contains(tag string) bool {
	return s.seen[tag]
}

// Slice returns the tags in insertion order. The caller owns the result.
func (s *TagSet) Slice() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
