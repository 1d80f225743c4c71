package tokens

// IssueKind names a diagnostic category.
type IssueKind string

const (
	// IssueMissingToken: the token is absent from one theme, or carries the
	// error color there because the merge filled it in.
	IssueMissingToken IssueKind = "missing_token"
	// IssueDanglingReference: the raw value names a palette key that does not exist.
	IssueDanglingReference IssueKind = "dangling_reference"
	// IssueUnresolvedCSS: the raw value is a palette key, so the generated
	// CSS declaration is not a usable color on its own.
	IssueUnresolvedCSS IssueKind = "unresolved_css"
	// IssuePropertyCollision: two tokens map to the same custom property,
	// so one CSS declaration shadows the other.
	IssuePropertyCollision IssueKind = "property_collision"
)

// Issue is one diagnostic finding.
type Issue struct {
	Kind  IssueKind `json:"kind"`
	Theme Theme     `json:"theme,omitempty"`
	Token string    `json:"token"`
	Value string    `json:"value,omitempty"`
}

// Report collects diagnostics for a palette and semantic table.
type Report struct {
	Tokens int     `json:"tokens"`
	Issues []Issue `json:"issues"`
}

// Count returns the number of issues of kind.
func (r Report) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// HasErrors reports missing tokens, dangling references or property
// collisions.
func (r Report) HasErrors() bool {
	return r.Count(IssueMissingToken) > 0 ||
		r.Count(IssueDanglingReference) > 0 ||
		r.Count(IssuePropertyCollision) > 0
}

// Check inspects the table without changing it. errorColor identifies
// values the merge step substituted for missing tokens.
func Check(palette *Map, table SemanticTable, errorColor string) Report {
	union := NewMap()
	for _, theme := range Themes {
		table.For(theme).Each(func(token, _ string) { union.Set(token, "") })
	}

	report := Report{Tokens: union.Len(), Issues: []Issue{}}
	for _, theme := range Themes {
		values := table.For(theme)
		for _, token := range union.Keys() {
			raw, ok := values.Get(token)
			if !ok || (errorColor != "" && raw == errorColor) {
				report.Issues = append(report.Issues, Issue{Kind: IssueMissingToken, Theme: theme, Token: token, Value: raw})
				continue
			}
			if Value(raw).Kind() != KindReference {
				continue
			}
			report.Issues = append(report.Issues, Issue{Kind: IssueUnresolvedCSS, Theme: theme, Token: token, Value: raw})
			if _, found := palette.Get(raw); !found {
				report.Issues = append(report.Issues, Issue{Kind: IssueDanglingReference, Theme: theme, Token: token, Value: raw})
			}
		}
	}
	report.Issues = append(report.Issues, PropertyCollisions(table)...)
	return report
}
