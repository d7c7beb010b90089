package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// spinnerEnabled reports whether a spinner can be drawn. Swapped in tests.
var spinnerEnabled = IsTTY

// RunWithSpinner runs action while showing a spinner titled title.
// Without a terminal the action runs directly and nothing is drawn.
// The spinner is presentation only; the action's error is returned as-is.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !spinnerEnabled() {
		return action(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action(ctx)
	}()

	var result error
	spinnerErr := spinner.New().
		Title(title).
		Action(func() {
			select {
			case <-ctx.Done():
				result = ctx.Err()
			case result = <-errCh:
			}
		}).
		Run()
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	return result
}
