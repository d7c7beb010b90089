package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockui/cli/internal/config"
	"github.com/blockui/cli/internal/deps"
	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/prompt"
	"github.com/blockui/cli/internal/testutil"
)

type recordingRunner struct {
	manager string
	calls   [][]string
	err     error
}

func (r *recordingRunner) Install(_ context.Context, _ string, pkgs []string) error {
	r.calls = append(r.calls, pkgs)
	return r.err
}

// testEnv isolates one CLI invocation: config path, output buffers and
// collaborators are all scoped to the test.
type testEnv struct {
	out    *bytes.Buffer
	logs   *bytes.Buffer
	runner *recordingRunner
}

func newTestEnv(t *testing.T, p prompt.Prompter) *testEnv {
	t.Helper()

	env := &testEnv{out: &bytes.Buffer{}, logs: &bytes.Buffer{}, runner: &recordingRunner{}}

	t.Setenv("BLOCKUI_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("BLOCKUI_PACKAGE_MANAGER", "")
	t.Setenv("BLOCKUI_INSTALL_DIR", "")
	t.Setenv("BLOCKUI_TEMPLATE_DIR", "")

	output.SetOutput(env.out)
	output.SetLogOutput(env.logs)

	origPrompter, origRunner := newPrompter, newRunner
	newPrompter = func() prompt.Prompter { return p }
	newRunner = func(manager string) deps.Runner {
		env.runner.manager = manager
		return env.runner
	}

	t.Cleanup(func() {
		newPrompter, newRunner = origPrompter, origRunner
		output.SetOutput(os.Stdout)
		output.SetLogOutput(os.Stderr)
		output.SetupLogging(output.LogConfig{})
	})

	return env
}

func (e *testEnv) execute(args ...string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(e.out)
	root.SetErr(e.logs)
	return root.Execute()
}

func reactProject(t *testing.T, withDeps bool) string {
	t.Helper()
	root := testutil.ReactProject(t)
	if withDeps {
		testutil.InstallPackages(t, root, deps.SupportPackages...)
	}
	return root
}

func failingPrompts(t *testing.T) prompt.Prompter {
	return prompt.Funcs{
		SelectFunc: func(string, []string) (string, error) {
			t.Error("unexpected Select")
			return "", errors.New("unexpected")
		},
		ConfirmFunc: func(string) (bool, error) {
			t.Error("unexpected Confirm")
			return false, errors.New("unexpected")
		},
	}
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "blockui", root.Use)
	for _, name := range []string{"config", "verbose", "timestamps", "cwd", "package-manager"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"add", "add-block", "list", "version", "config"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	usage := root.PersistentFlags().Lookup("package-manager").Usage
	for _, pm := range config.ValidPackageManagers() {
		assert.Contains(t, usage, pm)
	}
}

func TestAdd_FreshProject(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, false)

	err := env.execute("add", "Button", "--cwd", project)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"framer-motion", "clsx"}}, env.runner.calls)
	assert.Equal(t, "npm", env.runner.manager)
	assert.FileExists(t, filepath.Join(project, "src", "components", "blockui", "Button.tsx"))
	assert.Contains(t, env.out.String(), `import { Button } from "@/components/blockui/Button";`)
}

func TestAdd_PackageManagerFlag(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, false)

	require.NoError(t, env.execute("add", "Card", "--cwd", project, "--package-manager", "pnpm"))

	assert.Equal(t, "pnpm", env.runner.manager)
}

func TestAdd_InvalidPackageManager(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, false)

	err := env.execute("add", "Card", "--cwd", project, "--package-manager", "pip")

	require.Error(t, err)
	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
	assert.Contains(t, env.logs.String(), "unsupported package manager")
	assert.Empty(t, env.runner.calls)
}

func TestAdd_UnknownComponent(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, true)

	err := env.execute("add", "Nope", "--cwd", project)

	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.True(t, exitErr.Printed)
	assert.True(t, errors.Is(err, oerrors.ErrSelection))

	logs := env.logs.String()
	assert.Contains(t, logs, `component "Nope" not found`)
	assert.Contains(t, logs, "Available components:")
	assert.Contains(t, logs, "Button")
	assert.NoDirExists(t, filepath.Join(project, "src"))
}

func TestAddBlock_Nonexistent(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, true)

	err := env.execute("add-block", "nonexistent", "--cwd", project)

	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
	logs := env.logs.String()
	assert.Contains(t, logs, "Available blocks:")
	assert.Contains(t, logs, "blog")
	assert.Contains(t, logs, "login")
	assert.NoDirExists(t, filepath.Join(project, "src"))
}

func TestAddBlock_Login(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, true)

	err := env.execute("add-block", "login", "--cwd", project)

	require.NoError(t, err)
	assert.Empty(t, env.runner.calls)
	assert.FileExists(t, filepath.Join(project, "src", "components", "blockui", "blocks", "login", "index.ts"))
	assert.Contains(t, env.out.String(), `from "@/components/blockui/blocks/login"`)
}

func TestAdd_NotAReactProject(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := testutil.Project(t, `{"name":"api"}`)

	err := env.execute("add", "Button", "--cwd", project, "--force")

	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, env.logs.String(), "not a React project")

	assert.Equal(t, []string{"package.json"}, testutil.ListFiles(t, project))
}

func TestAdd_DeclinedOverwriteExitsZero(t *testing.T) {
	env := newTestEnv(t, prompt.Funcs{ConfirmFunc: func(string) (bool, error) { return false, nil }})
	project := reactProject(t, true)
	dest := filepath.Join(project, "src", "components", "blockui", "Button.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("mine"), 0o644))

	err := env.execute("add", "Button", "--cwd", project)

	require.NoError(t, err)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
	assert.Contains(t, env.out.String(), "Nothing was changed")
}

func TestAdd_InteractiveSelection(t *testing.T) {
	env := newTestEnv(t, prompt.Funcs{SelectFunc: func(_ string, options []string) (string, error) {
		assert.Contains(t, options, "Badge")
		return "Badge", nil
	}})
	project := reactProject(t, true)

	require.NoError(t, env.execute("add", "--cwd", project))

	assert.FileExists(t, filepath.Join(project, "src", "components", "blockui", "Badge.tsx"))
}

func TestAdd_DependencyFailure(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	env.runner.err = errors.New("exit status 1")
	project := reactProject(t, false)

	err := env.execute("add", "Button", "--cwd", project)

	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
	assert.True(t, errors.Is(err, oerrors.ErrDependencyInstall))
	assert.NoFileExists(t, filepath.Join(project, "src", "components", "blockui", "Button.tsx"))
}

func TestAdd_InstallDirFromConfig(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	project := reactProject(t, true)
	t.Setenv("BLOCKUI_INSTALL_DIR", "src/ui")

	require.NoError(t, env.execute("add", "Card", "--cwd", project))

	assert.FileExists(t, filepath.Join(project, "src", "ui", "Card.tsx"))
	assert.Contains(t, env.out.String(), `import { Card } from "@/ui/Card";`)
}

func TestAdd_TooManyArgs(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	err := env.execute("add", "Button", "Card")

	require.Error(t, err)
	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
}

func TestList(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	require.NoError(t, env.execute("list"))

	out := env.out.String()
	assert.Contains(t, out, "Button")
	assert.Contains(t, out, "login")
	assert.Contains(t, out, "blockui add-block hero")
}

func TestList_EmptyTemplateDir(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	t.Setenv("BLOCKUI_TEMPLATE_DIR", t.TempDir())

	require.NoError(t, env.execute("list"))

	assert.Contains(t, env.out.String(), "No components or blocks available.")
}

func TestList_MissingTemplateDir(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	t.Setenv("BLOCKUI_TEMPLATE_DIR", filepath.Join(t.TempDir(), "missing"))

	require.NoError(t, env.execute("list"))

	assert.Contains(t, env.out.String(), "No components or blocks available.")
	assert.Contains(t, env.logs.String(), "template directory unavailable")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	require.NoError(t, env.execute("version"))
	assert.Contains(t, env.out.String(), "blockui version")

	env.out.Reset()
	require.NoError(t, env.execute("version", "--short"))
	assert.Regexp(t, `^blockui \S+\n$`, env.out.String())
}

func TestList_JSON(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	require.NoError(t, env.execute("list", "-o", "json"))

	var listing catalogListing
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &listing))
	assert.Contains(t, listing.Components, "Button")
	assert.Contains(t, listing.Blocks, "login")
}

func TestList_EmptyJSON(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))
	t.Setenv("BLOCKUI_TEMPLATE_DIR", t.TempDir())

	require.NoError(t, env.execute("list", "--output", "json"))

	assert.JSONEq(t, `{"components":[],"blocks":[]}`, env.out.String())
}

func TestList_YAML(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	require.NoError(t, env.execute("list", "-o", "yaml"))

	assert.Contains(t, env.out.String(), "components:")
	assert.Contains(t, env.out.String(), "- Button")
}

func TestList_InvalidFormat(t *testing.T) {
	env := newTestEnv(t, failingPrompts(t))

	err := env.execute("list", "-o", "xml")

	assert.Equal(t, 1, oerrors.ExitCodeFromError(err))
	assert.Contains(t, env.logs.String(), "unsupported output format")
	assert.Contains(t, NewListCmd().Long, "exits with status 1")
}
