package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFences(t *testing.T) {
	body := "intro\n\n```sql\nCREATE TABLE events ();\n```\n\ntext\n\n```\nplain block\n```\n\n~~~javascript\nmodule.exports = noop;\n~~~\n"

	fences := Fences(body)
	require.Len(t, fences, 3)

	assert.Equal(t, "sql", fences[0].Lang)
	assert.Equal(t, "CREATE TABLE events ();", fences[0].Code)
	assert.Equal(t, 3, fences[0].Line)

	assert.Equal(t, "", fences[1].Lang)
	assert.Equal(t, "plain block", fences[1].Code)

	assert.Equal(t, "javascript", fences[2].Lang)
	assert.Equal(t, "module.exports = noop;", fences[2].Code)
}

func TestFencesUnclosed(t *testing.T) {
	fences := Fences("```go\nfunc main() {}\n")
	require.Len(t, fences, 1)
	assert.Equal(t, "go", fences[0].Lang)
	assert.Equal(t, "func main() {}\n", fences[0].Code)
}

func TestFencesNone(t *testing.T) {
	assert.Empty(t, Fences("no code here, just prose\n"))
}
