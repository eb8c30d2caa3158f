package filler

// HasStatus reports whether the tag set already carries one of the closed
// status labels. Classification treats such episodes as already processed
// and leaves them untouched.
func HasStatus(tags []string) bool {
	for _, tag := range tags {
		if _, ok := ParseStatus(tag); ok {
			return true
		}
	}
	return false
}

// Reconcile returns a tag set carrying exactly the given status label and
// nothing else from the closed set. Every old status label is removed before
// the new one is appended, so relabeling stays idempotent. Non-status tags
// keep their relative order; duplicates are dropped. An empty status removes
// without adding.
func Reconcile(tags []string, status Status) []string {
	result := make([]string, 0, len(tags)+1)
	seen := make(map[string]struct{}, len(tags)+1)

	for _, tag := range tags {
		if _, ok := ParseStatus(tag); ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	if status != "" {
		if _, dup := seen[string(status)]; !dup {
			result = append(result, string(status))
		}
	}

	return result
}
