package workbench

import (
	"fmt"

	"github.com/annolab/labelctl/internal/api"
)

func (w *Workbench) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

func (w *Workbench) printWelcome() {
	account := w.store.GetAccountID()
	if account != "" {
		w.printf("Signed in as %s. Type text to label it, /help for commands.\n", account)
	} else {
		w.printf("Type text to label it, /help for commands.\n")
	}
}

func (w *Workbench) printPrompt() {
	w.printf("label> ")
}

func (w *Workbench) printHelp() {
	w.printf(`Commands:
  /status        show system status
  /labels        list available labels
  /model [name]  show or set the model
  /logout        clear the session and exit
  /quit          exit without clearing the session
Any other input is submitted for labeling.
`)
}

// printStatus renders the latest polled status without issuing a request.
func (w *Workbench) printStatus() {
	current := w.poller.Current()
	if current == nil {
		w.printf("System status: unknown\n")
		return
	}
	w.printf("%s", FormatStatus(current))
}

func (w *Workbench) printLabels() {
	if len(w.labels) == 0 {
		w.printf("No labels available\n")
		return
	}
	for _, label := range w.labels {
		w.printf("  %s\n", label)
	}
}

func (w *Workbench) printResult(result *api.LabelResult) {
	w.printf("Input text:      %s\n", result.InputText)
	w.printf("Model used:      %s\n", result.ModelName)
	if result.PredictedLabel != nil {
		w.printf("Predicted label: %s\n", *result.PredictedLabel)
	} else {
		w.printf("Predicted label: none\n")
	}
	w.printf("Processing time: %.2f seconds\n", result.ProcessingTime)
	if result.ErrorMessage != "" {
		w.printf("Error: %s\n", result.ErrorMessage)
	}
}

// FormatStatus renders a system status line. Shared with the one-shot
// status command.
func FormatStatus(status *api.SystemStatus) string {
	if !status.IsBusy {
		return "System status: available\n"
	}
	user := "unknown"
	if status.CurrentUser != nil {
		user = *status.CurrentUser
	}
	return fmt.Sprintf("System status: busy\nUser %q is currently processing a request (%.2f seconds)\n", user, status.ProcessingTime)
}
