package combine

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTree(t *testing.T) {
	candidates := []string{
		"/src/b.txt",
		"/src/a.txt",
		"/src/lib/x.go",
		"/src/lib/sub/y.go",
		"/src/Zeta/z.txt",
	}

	got := GenerateTree("/src", candidates)

	expected := "/src/\n" +
		"├── lib/\n" +
		"│   ├── sub/\n" +
		"│   │   └── y.go\n" +
		"│   └── x.go\n" +
		"├── Zeta/\n" +
		"│   └── z.txt\n" +
		"├── a.txt\n" +
		"└── b.txt\n"
	assert.Equal(t, expected, got)
}

func TestGenerateTree_Empty(t *testing.T) {
	assert.Equal(t, "/src/\n", GenerateTree("/src", nil))
}

func TestGenerateTree_IgnoresPathsOutsideRoot(t *testing.T) {
	got := GenerateTree("/src", []string{"/other/a.txt", "/src/b.txt"})

	assert.Equal(t, "/src/\n└── b.txt\n", got)
}

func TestGenerateTree_FromCollectedCandidates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/src/main.go", nil)
	writeFile(t, fsys, "/src/vendor/dep.go", nil)
	writeFile(t, fsys, "/src/notes.log", nil)

	candidates, err := CollectCandidates(fsys, "/src", CollectOptions{
		Files:   mustPattern(t, `\.log$`),
		Folders: mustPattern(t, "^vendor$"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/src/\n└── main.go\n", GenerateTree("/src", candidates))
}
