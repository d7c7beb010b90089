package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/config"
	"github.com/blockui/cli/internal/deps"
	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/prompt"
	"github.com/blockui/cli/internal/templates"
	"github.com/blockui/cli/internal/version"
	"github.com/blockui/cli/internal/workflow"
)

// Collaborator constructors, replaced in tests.
var (
	newPrompter = func() prompt.Prompter { return prompt.NewHuhPrompter() }
	newRunner   = func(manager string) deps.Runner { return &deps.ExecRunner{Manager: manager} }
	newReporter = func() workflow.Reporter {
		return output.NewTerminalReporter("blockui", version.Get().Version)
	}
)

// runInstall drives one add or add-block invocation.
func runInstall(cmd *cobra.Command, kind workflow.Kind, args []string, force bool) error {
	s := GetSettings()
	reporter := newReporter()

	wf, err := buildWorkflow(s, reporter)
	if err != nil {
		reporter.Failure(err)
		return printedExit(err)
	}

	req := workflow.Request{Kind: kind, Force: force}
	if len(args) > 0 {
		req.Name = args[0]
	}

	result, err := wf.Run(cmd.Context(), req)
	if err != nil {
		return printedExit(err)
	}

	output.Debug("install finished",
		"kind", result.Kind,
		"name", result.Name,
		"cancelled", result.Cancelled,
		"installed", result.Installed,
	)
	return nil
}

// printedExit wraps an error the reporter has already shown.
func printedExit(err error) error {
	exitErr := oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	exitErr.Printed = true
	return exitErr
}

func buildWorkflow(s *Settings, reporter workflow.Reporter) (*workflow.Workflow, error) {
	cfg := &config.Config{
		PackageManager: s.PackageManager.Value,
		InstallDir:     s.InstallDir.Value,
		TemplateDir:    s.TemplateDir.Value,
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	templateDir, err := config.ExpandPath(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}
	store, err := templates.Open(templateDir)
	if err != nil {
		return nil, err
	}

	return &workflow.Workflow{
		Store:       store,
		Prompter:    newPrompter(),
		Reporter:    reporter,
		Runner:      newRunner(cfg.PackageManager),
		ProjectRoot: s.ProjectRoot,
		InstallDir:  cfg.InstallDir,
	}, nil
}
