package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/bnema/testnet/internal/app"
)

var (
	successStyle = color.New(color.FgGreen, color.Bold)
	failureStyle = color.New(color.FgRed, color.Bold)
	mutedStyle   = color.New(color.Faint)
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderSuccess(msg string) string { return successStyle.Sprint(msg) }

func cliRenderFailure(msg string) string { return failureStyle.Sprint(msg) }

func cliRenderMeta(label, value string) string {
	return label + " " + mutedStyle.Sprint(value)
}

// writeOutcome prints the one-line result of a testsuite process.
func writeOutcome(w io.Writer, outcome app.Outcome, runErr error) error {
	result := outcome.Result
	switch {
	case result == nil && runErr == nil:
		return cliWriteLine(w, cliRenderSuccess("OK")+" suite metadata published")
	case result == nil:
		return cliWriteLine(w, cliRenderFailure("ERROR")+" "+runErr.Error())
	case result.Passed():
		return cliWriteLine(w, fmt.Sprintf("%s %s %s %s",
			cliRenderSuccess("PASS"),
			result.TestName,
			cliRenderMeta("in", result.Duration.Round(time.Millisecond).String()),
			cliRenderMeta("services", fmt.Sprint(outcome.Summary.ServicesAdded)),
		))
	default:
		return cliWriteLine(w, fmt.Sprintf("%s %s: %v %s",
			cliRenderFailure("FAIL"),
			result.TestName,
			result.Err,
			cliRenderMeta("in", result.Duration.Round(time.Millisecond).String()),
		))
	}
}
