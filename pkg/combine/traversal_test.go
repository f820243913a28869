package combine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func mustPattern(t *testing.T, expr string) Pattern {
	t.Helper()
	p, err := CompilePattern(expr)
	require.NoError(t, err)
	return p
}

func TestCollectCandidates_LexicalTopDownOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/src/b.txt", nil)
	writeFile(t, fsys, "/src/a.txt", nil)
	writeFile(t, fsys, "/src/A.txt", nil)
	writeFile(t, fsys, "/src/sub/c.txt", nil)
	writeFile(t, fsys, "/src/sub/deeper/d.txt", nil)

	got, err := CollectCandidates(fsys, "/src", CollectOptions{}, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/src/A.txt",
		"/src/a.txt",
		"/src/b.txt",
		"/src/sub/c.txt",
		"/src/sub/deeper/d.txt",
	}, got)
}

func TestCollectCandidates_Exclusions(t *testing.T) {
	tests := []struct {
		name    string
		files   string
		folders string
		want    []string
	}{
		{
			name: "no patterns",
			want: []string{
				"/src/app.log",
				"/src/keep/main.go",
				"/src/keep/node_modules/dep.js",
				"/src/node_modules/lib.js",
				"/src/readme.md",
			},
		},
		{
			name:    "folder pruned at every depth",
			folders: "^node_modules$",
			want: []string{
				"/src/app.log",
				"/src/keep/main.go",
				"/src/readme.md",
			},
		},
		{
			name:  "file pattern on base name",
			files: `\.(log|js)$`,
			want: []string{
				"/src/keep/main.go",
				"/src/readme.md",
			},
		},
		{
			name:    "file pattern regardless of folder pattern",
			files:   "main",
			folders: "modules",
			want: []string{
				"/src/app.log",
				"/src/readme.md",
			},
		},
		{
			name:  "unanchored search",
			files: "a",
			want: []string{
				"/src/keep/node_modules/dep.js",
				"/src/node_modules/lib.js",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFile(t, fsys, "/src/readme.md", nil)
			writeFile(t, fsys, "/src/app.log", nil)
			writeFile(t, fsys, "/src/node_modules/lib.js", nil)
			writeFile(t, fsys, "/src/keep/main.go", nil)
			writeFile(t, fsys, "/src/keep/node_modules/dep.js", nil)

			got, err := CollectCandidates(fsys, "/src", CollectOptions{
				Files:   mustPattern(t, tt.files),
				Folders: mustPattern(t, tt.folders),
			}, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectCandidates_FolderPatternIgnoresFullPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/project/lib/a.txt", nil)

	got, err := CollectCandidates(fsys, "/project", CollectOptions{Folders: mustPattern(t, "project")}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/project/lib/a.txt"}, got)
}

func TestCollectCandidates_RootNeverPruned(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/node_modules/a.txt", nil)
	writeFile(t, fsys, "/node_modules/node_modules/b.txt", nil)

	got, err := CollectCandidates(fsys, "/node_modules", CollectOptions{Folders: mustPattern(t, "node_modules")}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/node_modules/a.txt"}, got)
}

func TestCollectCandidates_OutputExcludedUnconditionally(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/src/a.txt", nil)
	writeFile(t, fsys, "/src/out/combined.txt", nil)

	var skipped []string
	got, err := CollectCandidates(fsys, "/src", CollectOptions{
		Output:          "/src/out/combined.txt",
		OnOutputSkipped: func(name string) { skipped = append(skipped, name) },
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.txt"}, got)
	assert.Equal(t, []string{"combined.txt"}, skipped)
}

func TestCollectCandidates_MissingRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := CollectCandidates(fsys, "/missing", CollectOptions{}, nil)

	assert.Error(t, err)
}

func TestCollectCandidates_RelativeRootResolvedAgainstWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("A"), 0o644))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	t.Setenv("PWD", dir)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	got, err := CollectCandidates(afero.NewOsFs(), ".", CollectOptions{}, nil)

	require.NoError(t, err)
	abs, err := filepath.Abs("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, got)
}

func TestCollectCandidates_Symlinks(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("R"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "hidden.txt"), []byte("H"), 0o644))
	if err := os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "dangling.txt")))

	got, err := CollectCandidates(afero.NewOsFs(), dir, CollectOptions{}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "dangling.txt"),
		filepath.Join(dir, "link.txt"),
		filepath.Join(dir, "real.txt"),
	}, got)
}

func TestCollectCandidates_SymlinkedRootIsWalked(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "real")
	link := filepath.Join(base, "link")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.txt"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(target, "sub", "b.txt"), []byte("B"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(target, "out.txt"), []byte("old"), 0o644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	var skipped []string
	got, err := CollectCandidates(afero.NewOsFs(), link, CollectOptions{
		Output:          filepath.Join(link, "out.txt"),
		OnOutputSkipped: func(name string) { skipped = append(skipped, name) },
	}, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(link, "a.txt"), filepath.Join(link, "sub", "b.txt")}, got)
	assert.Equal(t, []string{"out.txt"}, skipped)
}
