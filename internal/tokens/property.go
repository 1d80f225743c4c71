package tokens

import "strings"

var propertyReplacer = strings.NewReplacer(
	".", "-",
	"/", "-",
	"_", "-",
	" ", "-",
	"\t", "-",
)

// PropertyName converts a token name to its CSS custom-property suffix.
func PropertyName(token string) string {
	return propertyReplacer.Replace(strings.TrimSpace(token))
}

// PropertyCollisions reports tokens whose property name is already taken
// by an earlier token in the table. Value holds the earlier token.
func PropertyCollisions(table SemanticTable) []Issue {
	seen := make(map[string]string)
	reported := make(map[string]struct{})
	var issues []Issue
	for _, theme := range Themes {
		table.For(theme).Each(func(token, _ string) {
			name := PropertyName(token)
			first, ok := seen[name]
			if !ok {
				seen[name] = token
				return
			}
			if first == token {
				return
			}
			if _, dup := reported[token]; dup {
				return
			}
			reported[token] = struct{}{}
			issues = append(issues, Issue{Kind: IssuePropertyCollision, Token: token, Value: first})
		})
	}
	return issues
}
