package catalog

// Detect returns the IDs of concepts whose detection patterns match the
// problem text, in catalog order. A concept matches if any one of its
// patterns matches. The problem's declared type is included only when it
// is itself a catalog entry, so generic classifier labels ("word problem",
// "unknown") never leak in as concepts.
func Detect(problemText, declaredType string) []string {
	var ids []string
	seen := make(map[string]bool)

	for i := range g.concepts {
		c := &g.concepts[i]
		for _, re := range g.patterns[c.ID] {
			if re.MatchString(problemText) {
				ids = append(ids, c.ID)
				seen[c.ID] = true
				break
			}
		}
	}

	if declaredType != "" && !seen[declaredType] {
		if _, ok := g.byID[declaredType]; ok {
			ids = append(ids, declaredType)
		}
	}

	return ids
}
