// Package tui provides terminal user interface components for probectl.
//
// This package uses the Bubble Tea framework to render a live progress
// display for the polling commands (get_ok, service_up) when --progress
// is given.
//
// # Progress Display
//
// RunProgress drives the poll on a background goroutine and renders its
// attempts as they happen:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//	err := tui.RunProgress(deadline, cancel, func(send func(tea.Msg)) error {
//	    poller.OnAttempt = func(a probe.Attempt) { send(tui.AttemptMsg(a)) }
//	    for i, req := range reqs {
//	        send(tui.TargetMsg{Index: i + 1, Total: len(reqs), URL: req.URL()})
//	        if err := poller.Wait(ctx, req, deadline); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	})
//
// # Display Features
//
//   - Spinner plus the URL currently being probed, with batch position
//   - Attempt counter and elapsed time against the overall deadline
//   - Last failure shown inline, truncated to the terminal width
//   - Ctrl+C aborts the poll and cancels the context
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
