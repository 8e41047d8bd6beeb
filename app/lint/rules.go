package lint

import (
	"fmt"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"griddle/app/content"
	"griddle/app/models"
)

// DefaultRules returns the standard per-post rule set.
func DefaultRules() []Rule {
	return []Rule{
		RequiredFields{},
		FenceLanguage{},
		FutureDate{Now: time.Now},
	}
}

// RequiredFields checks that a post carries a non-empty title and a non-zero
// date.
type RequiredFields struct{}

func (RequiredFields) Name() string { return "required-fields" }

func (r RequiredFields) Check(post *models.Post) []Finding {
	var findings []Finding
	if post.Title == "" {
		findings = append(findings, Finding{
			Rule:     r.Name(),
			Severity: SeverityError,
			Path:     post.Path,
			Message:  "post has no title",
		})
	}
	if post.Date.IsZero() {
		findings = append(findings, Finding{
			Rule:     r.Name(),
			Severity: SeverityError,
			Path:     post.Path,
			Message:  "post has no date",
		})
	}
	return findings
}

// FenceLanguage checks that every fenced code block names a language the
// highlighter knows and that its content actually lexes in that language. An
// unannotated fence is only a warning: it renders, but nothing can verify it.
type FenceLanguage struct{}

func (FenceLanguage) Name() string { return "fence-language" }

func (r FenceLanguage) Check(post *models.Post) []Finding {
	var findings []Finding
	for _, fence := range content.Fences(post.Body) {
		if fence.Lang == "" {
			findings = append(findings, Finding{
				Rule:     r.Name(),
				Severity: SeverityWarning,
				Path:     post.Path,
				Message:  fmt.Sprintf("code fence at line %d has no language annotation", fence.Line),
			})
			continue
		}
		lexer := lexers.Get(fence.Lang)
		if lexer == nil {
			findings = append(findings, Finding{
				Rule:     r.Name(),
				Severity: SeverityError,
				Path:     post.Path,
				Message:  fmt.Sprintf("code fence at line %d: unknown language %q", fence.Line, fence.Lang),
			})
			continue
		}
		if !lexes(lexer, fence.Code) {
			findings = append(findings, Finding{
				Rule:     r.Name(),
				Severity: SeverityError,
				Path:     post.Path,
				Message:  fmt.Sprintf("code fence at line %d does not lex as %q", fence.Line, fence.Lang),
			})
		}
	}
	return findings
}

// lexes reports whether code tokenizes cleanly with the given lexer. Any
// chroma error token means the block contains text the language cannot
// explain.
func lexes(lexer chroma.Lexer, code string) bool {
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return false
	}
	for _, tok := range it.Tokens() {
		if tok.Type == chroma.Error {
			return false
		}
	}
	return true
}

// FutureDate flags posts dated ahead of the build clock. They are usually
// drafts scheduled by mistake.
type FutureDate struct {
	Now func() time.Time
}

func (FutureDate) Name() string { return "future-date" }

func (r FutureDate) Check(post *models.Post) []Finding {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if !post.Date.IsZero() && post.Date.After(now()) {
		return []Finding{{
			Rule:     r.Name(),
			Severity: SeverityWarning,
			Path:     post.Path,
			Message:  fmt.Sprintf("post is dated in the future (%s)", post.Date.Format("2006-01-02")),
		}}
	}
	return nil
}
