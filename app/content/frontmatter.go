package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var (
	// ErrNoFrontMatter is returned when a file does not open with a front
	// matter block at all.
	ErrNoFrontMatter = errors.New("no front matter block")

	// ErrUnclosedFrontMatter is returned when the opening delimiter is never
	// matched by a closing one.
	ErrUnclosedFrontMatter = errors.New("front matter block is not closed")
)

// FrontMatter is the decoded leading metadata block of a post file. Raw keeps
// every key the author wrote, including ones the engine has no opinion about.
type FrontMatter struct {
	Title      string
	Date       time.Time
	HasDate    bool
	Categories []string
	Layout     string
	Comments   bool
	Raw        map[string]any
}

// SplitFrontMatter separates the leading front matter block from the body.
// The block must start on the first line. CRLF input is normalized first.
func SplitFrontMatter(src string) (block, body string, err error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	if !strings.HasPrefix(src, delimiter+"\n") && src != delimiter {
		return "", "", ErrNoFrontMatter
	}

	rest := strings.TrimPrefix(src, delimiter+"\n")
	idx := strings.Index(rest, "\n"+delimiter+"\n")
	switch {
	case rest == delimiter:
		// Empty block closed at end of input: "---\n---".
		return "", "", nil
	case strings.HasPrefix(rest, delimiter+"\n"):
		// Empty block: "---\n---\n".
		return "", strings.TrimPrefix(rest, delimiter+"\n"), nil
	case idx >= 0:
		return rest[:idx+1], rest[idx+len(delimiter)+2:], nil
	case strings.HasSuffix(rest, "\n"+delimiter):
		return rest[:len(rest)-len(delimiter)], "", nil
	default:
		return "", "", ErrUnclosedFrontMatter
	}
}

// ParseFrontMatter decodes a front matter block into its known fields while
// preserving the raw key set.
func ParseFrontMatter(block string) (*FrontMatter, error) {
	raw := map[string]any{}
	if strings.TrimSpace(block) != "" {
		if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
			return nil, fmt.Errorf("invalid front matter: %v", err)
		}
	}

	fm := &FrontMatter{Raw: raw}

	if v, ok := raw["title"]; ok {
		fm.Title = fmt.Sprintf("%v", v)
	}
	if v, ok := raw["layout"]; ok {
		fm.Layout = fmt.Sprintf("%v", v)
	}
	if v, ok := raw["comments"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("front matter 'comments' must be a boolean, got %T", v)
		}
		fm.Comments = b
	}
	if v, ok := raw["date"]; ok {
		t, err := parseDate(v)
		if err != nil {
			return nil, err
		}
		fm.Date = t
		fm.HasDate = true
	}
	if v, ok := raw["categories"]; ok {
		cats, err := parseCategories(v)
		if err != nil {
			return nil, err
		}
		fm.Categories = cats
	}

	return fm, nil
}

// Jekyll accepts several date layouts in front matter; the yaml decoder also
// hands back time.Time directly for unquoted ISO timestamps.
var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", d)
	default:
		return time.Time{}, fmt.Errorf("front matter 'date' must be a date, got %T", v)
	}
}

// parseCategories accepts both YAML list form and Jekyll's space-separated
// string form.
func parseCategories(v any) ([]string, error) {
	switch c := v.(type) {
	case string:
		return strings.Fields(c), nil
	case []any:
		cats := make([]string, 0, len(c))
		for _, item := range c {
			cats = append(cats, fmt.Sprintf("%v", item))
		}
		return cats, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("front matter 'categories' must be a string or list, got %T", v)
	}
}
