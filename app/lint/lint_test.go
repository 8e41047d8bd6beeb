package lint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griddle/app/models"
)

func testPost(slug, body string) *models.Post {
	return &models.Post{
		Slug:  slug,
		Path:  "posts/2016-03-24-" + slug + ".md",
		Title: "Title for " + slug,
		Date:  time.Date(2016, 3, 24, 0, 0, 0, 0, time.UTC),
		Body:  body,
	}
}

func findByRule(report *Report, rule string) []Finding {
	var out []Finding
	for _, f := range report.Findings {
		if f.Rule == rule {
			out = append(out, f)
		}
	}
	return out
}

func TestRequiredFields(t *testing.T) {
	t.Run("clean post", func(t *testing.T) {
		report := Run([]*models.Post{testPost("ok", "prose only\n")})
		assert.Empty(t, findByRule(report, "required-fields"))
		assert.False(t, report.HasErrors())
	})

	t.Run("missing title and date", func(t *testing.T) {
		post := &models.Post{Slug: "bad", Path: "bad.md", Body: "x"}
		report := Run([]*models.Post{post})

		findings := findByRule(report, "required-fields")
		require.Len(t, findings, 2)
		assert.Equal(t, SeverityError, findings[0].Severity)
		assert.True(t, report.HasErrors())
	})
}

func TestFenceLanguage(t *testing.T) {
	t.Run("known languages pass", func(t *testing.T) {
		post := testPost("sql-post", "```sql\nSELECT 1;\n```\n\n```javascript\nrequire('debug');\n```\n")
		report := Run([]*models.Post{post})
		assert.Empty(t, findByRule(report, "fence-language"))
	})

	t.Run("unknown language is an error", func(t *testing.T) {
		post := testPost("bad-lang", "```notalanguage\n???\n```\n")
		report := Run([]*models.Post{post})

		findings := findByRule(report, "fence-language")
		require.Len(t, findings, 1)
		assert.Equal(t, SeverityError, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "notalanguage")
		assert.True(t, report.HasErrors())
	})

	t.Run("content must lex in the annotated language", func(t *testing.T) {
		post := testPost("mislabeled", "```go\n??? ?? !!! not go at all @@@\n```\n")
		report := Run([]*models.Post{post})

		findings := findByRule(report, "fence-language")
		require.Len(t, findings, 1)
		assert.Equal(t, SeverityError, findings[0].Severity)
		assert.Contains(t, findings[0].Message, `does not lex as "go"`)
		assert.True(t, report.HasErrors())
	})

	t.Run("unannotated fence is a warning", func(t *testing.T) {
		post := testPost("no-lang", "```\nplain\n```\n")
		report := Run([]*models.Post{post})

		findings := findByRule(report, "fence-language")
		require.Len(t, findings, 1)
		assert.Equal(t, SeverityWarning, findings[0].Severity)
		assert.False(t, report.HasErrors())
	})
}

func TestDuplicateSlug(t *testing.T) {
	a := testPost("same", "body\n")
	b := testPost("same", "other body\n")
	b.Path = "posts/2016-03-25-same.md"

	report := Run([]*models.Post{a, b})

	findings := findByRule(report, "duplicate-slug")
	require.Len(t, findings, 1)
	assert.Equal(t, b.Path, findings[0].Path)
	assert.Contains(t, findings[0].Message, a.Path)
	assert.True(t, report.HasErrors())
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2016, 3, 24, 12, 0, 0, 0, time.UTC)
	rule := FutureDate{Now: func() time.Time { return now }}

	past := testPost("past", "body\n")
	assert.Empty(t, rule.Check(past))

	future := testPost("future", "body\n")
	future.Date = now.Add(48 * time.Hour)
	findings := rule.Check(future)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
}

func TestReportHasErrors(t *testing.T) {
	report := &Report{}
	assert.False(t, report.HasErrors())

	report.add(Finding{Severity: SeverityWarning})
	assert.False(t, report.HasErrors())

	report.add(Finding{Severity: SeverityError})
	assert.True(t, report.HasErrors())
}
