package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	if runtime.GOOS == "windows" {
		os.Exit(0)
	}

	// Build binary before running tests
	dir, err := os.MkdirTemp("", "ngkit-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "ngkit")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// fakeConfig replaces every external tool with a shell one-liner so the
// orchestration runs without Node.js.
const fakeConfig = `tools:
  ng: echo ng
  prettier: "true"
  sass_lint: "true"
  tslint: "true"
`

// newProject writes a tiny Angular-shaped project and returns its root.
func newProject(t *testing.T, config string) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		".ngkit.yaml":                     config,
		"src/app/app.component.html":      "<div>\r\n  <p>hello</p>\r\n</div>\r\n",
		"src/app/app.component.ts":        "export class AppComponent {}\n",
		"src/index.html":                  "<app-root></app-root>\n",
		"dist/.gitkeep":                   "",
		"node_modules/pkg/empty.js":       "",
		"coverage/lcov-report/empty.html": "",
	}
	for name, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
	return root
}

func run(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, t.TempDir(), "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "ngkit")
}

func TestE2E_Build(t *testing.T) {
	root := newProject(t, fakeConfig)
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist", "stale.js"), []byte("x"), 0644))

	out, code := run(t, root, "build", "--lint=false")
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "cleaning...")
	assert.Contains(t, out, "ng build --aot --no-stats-json")

	entries, err := os.ReadDir(filepath.Join(root, "dist"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestE2E_BuildInvalidFlags(t *testing.T) {
	root := newProject(t, fakeConfig)

	out, code := run(t, root, "build", "--watch", "--prod")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "--watch and --prod are mutually exclusive.")
	assert.FileExists(t, filepath.Join(root, "dist", ".gitkeep"), "nothing cleaned")
}

func TestE2E_TestPropagatesExitCode(t *testing.T) {
	root := newProject(t, "tools:\n  ng: sh -c 'exit 3'\n")

	_, code := run(t, root, "test")
	assert.Equal(t, 3, code)
}

func TestE2E_LintPasses(t *testing.T) {
	root := newProject(t, fakeConfig)

	out, code := run(t, root, "lint")
	assert.Equal(t, 0, code, out)
}

func TestE2E_LintFailsOnEmptyFile(t *testing.T) {
	root := newProject(t, fakeConfig)
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app", "empty.ts"), nil, 0644))

	out, code := run(t, root, "lint", "--prettier=false", "--sasslint=false", "--tslint=false")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "File is empty.")
}

func TestE2E_FormatHTML(t *testing.T) {
	root := newProject(t, fakeConfig)
	template := filepath.Join(root, "src", "app", "list.component.html")
	require.NoError(t, os.WriteFile(template, []byte("<ul><li>a</li><li>b</li></ul>"), 0644))

	out, code := run(t, root, "format-html", "--list")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "list.component.html")
	assert.Contains(t, out, "html formatting")

	_, code = run(t, root, "format-html", "--fix")
	assert.Equal(t, 0, code)

	out, code = run(t, root, "format-html", "--list")
	assert.Equal(t, 0, code, out)
}

func TestE2E_Prelint(t *testing.T) {
	root := newProject(t, fakeConfig)

	out, code := run(t, root, "prelint")
	assert.Equal(t, 0, code, out)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "indented.ts"), []byte("  x"), 0644))
	out, code = run(t, root, "prelint")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "File has leading whitespace.")
}
