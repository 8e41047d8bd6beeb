// Package lint applies editorial checks to loaded posts: the properties a
// post must satisfy before it is worth publishing, as opposed to the parse
// errors that keep it from loading at all.
package lint

import (
	"fmt"

	"griddle/app/models"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single rule violation on a single post.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: [%s] %s", f.Path, f.Severity, f.Rule, f.Message)
}

// Report collects the findings of a lint run.
type Report struct {
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding is error-severity.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Rule checks one post. Corpus-wide rules (duplicate slugs) are handled
// separately because they need to see every post at once.
type Rule interface {
	Name() string
	Check(post *models.Post) []Finding
}

// Run applies all default rules to the given posts.
func Run(posts []*models.Post) *Report {
	return RunRules(posts, DefaultRules())
}

// RunRules applies the given per-post rules plus the corpus-wide checks.
func RunRules(posts []*models.Post, rules []Rule) *Report {
	report := &Report{}

	for _, post := range posts {
		for _, rule := range rules {
			for _, f := range rule.Check(post) {
				report.add(f)
			}
		}
	}

	checkDuplicateSlugs(posts, report)

	return report
}

func checkDuplicateSlugs(posts []*models.Post, report *Report) {
	seen := make(map[string]string, len(posts))
	for _, post := range posts {
		if first, ok := seen[post.Slug]; ok {
			report.add(Finding{
				Rule:     "duplicate-slug",
				Severity: SeverityError,
				Path:     post.Path,
				Message:  fmt.Sprintf("slug %q already used by %s", post.Slug, first),
			})
			continue
		}
		seen[post.Slug] = post.Path
	}
}
