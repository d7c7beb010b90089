package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("login", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("login", map[string]string{
		"index.ts":                StatusCreated,
		"LoginForm.tsx":           StatusOverwritten,
		"parts/PasswordInput.tsx": StatusCreated,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "login/")
	assert.Contains(t, lines[1], "├── parts/")
	assert.Contains(t, lines[2], "│   └── PasswordInput.tsx")
	assert.Contains(t, lines[3], "├── LoginForm.tsx")
	assert.Contains(t, lines[3], StatusOverwritten)
	assert.Contains(t, lines[4], "└── index.ts")
}
