package commission

import "strings"

// Standardize lowercases a branch name and keeps only ASCII letters and digits, so
// "(F-6)" and "F 6" both become "f6".
func Standardize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matches reports whether two branch names refer to the same branch: equal standardized
// forms, or one contained in the other. Containment needs both forms non-empty, so a
// blank name only matches another blank name.
func Matches(a, b string) bool {
	sa, sb := Standardize(a), Standardize(b)
	if sa == sb {
		return true
	}
	if sa == "" || sb == "" {
		return false
	}
	return strings.Contains(sa, sb) || strings.Contains(sb, sa)
}
