package content

import "strings"

// Fence is a fenced code block found in a post body.
type Fence struct {
	Lang string // the info-string language annotation, "" when absent
	Code string
	Line int // 1-based line of the opening fence, relative to the body
}

// Fences scans a post body for ``` and ~~~ fenced code blocks. Unclosed
// fences run to the end of the body, matching how renderers treat them.
func Fences(body string) []Fence {
	var fences []Fence

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		marker := fenceMarker(lines[i])
		if marker == "" {
			continue
		}

		lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), marker))
		if f := strings.Fields(lang); len(f) > 0 {
			lang = f[0]
		}

		var code []string
		opening := i
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == marker {
				break
			}
			code = append(code, lines[i])
		}

		fences = append(fences, Fence{
			Lang: lang,
			Code: strings.Join(code, "\n"),
			Line: opening + 1,
		})
	}

	return fences
}

func fenceMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	}
	return ""
}
