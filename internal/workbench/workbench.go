// Package workbench implements the interactive labeling session: submit
// text, review the predicted label, and optionally send feedback. It owns
// the composing/submitting/result/feedback state machine and renders to the
// terminal.
package workbench

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/catalog"
	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/logging"
	"github.com/annolab/labelctl/internal/session"
	"github.com/annolab/labelctl/internal/status"
)

// Client is the slice of the API client the workbench needs.
type Client interface {
	LabelText(ctx context.Context, text, modelName string) (*api.LabelResult, error)
	SubmitFeedback(ctx context.Context, requestID int, isSupported bool, correctedLabel string) (*api.FeedbackResponse, error)
	GetStatus(ctx context.Context) (*api.SystemStatus, error)
	GetLabels(ctx context.Context) ([]string, error)
}

// Workbench drives one interactive labeling session for an authenticated
// operator.
type Workbench struct {
	client  Client
	store   *session.Store
	catalog *catalog.Service
	poller  *status.Poller
	log     *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	model          string
	result         *api.LabelResult
	feedback       FeedbackState
	correctedLabel string
	labels         []string
}

// New creates a workbench around a shared catalog service. The poller is
// started by Run, not here.
func New(settings *conf.Settings, client Client, store *session.Store, labels *catalog.Service, in io.Reader, out io.Writer) *Workbench {
	return &Workbench{
		client:  client,
		store:   store,
		catalog: labels,
		poller:  status.NewPoller(client, settings.StatusPollInterval()),
		log:     logging.ForService("workbench"),
		in:      bufio.NewScanner(in),
		out:     out,
		model:   settings.Labeling.DefaultModel,
	}
}

// Run mounts the session: loads the label catalog, starts status polling,
// and processes operator input until EOF, /quit, /logout, or ctx
// cancellation. Both the poller and in-flight requests stop with ctx.
func (w *Workbench) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	labels, err := w.catalog.Labels(ctx)
	if err != nil {
		// Correction selector stays empty until the catalog loads.
		w.log.Warn("Failed to fetch label catalog", "error", err)
	} else {
		w.labels = labels
	}

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		w.poller.Start(ctx)
	}()
	defer func() {
		cancel()
		<-pollerDone
	}()

	w.printWelcome()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		w.printPrompt()
		line, ok := w.readLine()
		if !ok {
			return nil
		}

		switch {
		case line == "/quit", line == "/q":
			return nil
		case line == "/logout":
			if err := w.store.Logout(); err != nil {
				return err
			}
			w.printf("Logged out.\n")
			return nil
		case line == "/help":
			w.printHelp()
		case line == "/status":
			w.printStatus()
		case line == "/labels":
			w.printLabels()
		case strings.HasPrefix(line, "/model"):
			w.handleModel(strings.TrimSpace(strings.TrimPrefix(line, "/model")))
		case strings.HasPrefix(line, "/"):
			w.printf("Unknown command %q, try /help\n", line)
		default:
			w.SubmitText(ctx, line)
			if w.feedback == FeedbackPrompting {
				w.runFeedbackFlow(ctx)
			}
		}
	}
}

// runFeedbackFlow walks the operator through the support/correct decision
// for the current result.
func (w *Workbench) runFeedbackFlow(ctx context.Context) {
	for w.feedback == FeedbackPrompting {
		w.printf("Do you support this result? [y]es / [n]o / [s]kip: ")
		answer, ok := w.readLine()
		if !ok {
			return
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			w.SupportPrediction(ctx)
			return
		case "n", "no":
			w.BeginCorrection()
			w.runCorrectionFlow(ctx)
		case "s", "skip", "":
			w.DismissFeedback()
			return
		default:
			w.printf("Please answer y, n, or s.\n")
		}
	}
}

// runCorrectionFlow prompts for the correct label by number. An empty
// answer cancels back to the support prompt without discarding the result.
func (w *Workbench) runCorrectionFlow(ctx context.Context) {
	for w.feedback == FeedbackCorrecting {
		if len(w.labels) == 0 {
			// The mount fetch may have failed; the catalog serves a cached
			// list when one arrived since.
			labels, err := w.catalog.Labels(ctx)
			if err != nil || len(labels) == 0 {
				w.printf("No labels available to choose from.\n")
				w.CancelCorrection()
				return
			}
			w.labels = labels
		}

		w.printf("Select the correct label (empty to cancel):\n")
		for i, label := range w.labels {
			w.printf("  %2d. %s\n", i+1, label)
		}
		w.printf("> ")

		answer, ok := w.readLine()
		if !ok {
			return
		}
		if answer == "" {
			w.CancelCorrection()
			return
		}

		if err := w.SelectCorrectionIndex(answer); err != nil {
			w.printf("%v\n", err)
			continue
		}
		w.SubmitCorrection(ctx)
	}
}

func (w *Workbench) handleModel(arg string) {
	if arg == "" {
		w.printf("Current model: %s (valid: %s)\n", w.model, strings.Join(conf.ValidModels, ", "))
		return
	}
	if !conf.IsValidModel(arg) {
		w.printf("Unknown model %q, valid models: %s\n", arg, strings.Join(conf.ValidModels, ", "))
		return
	}
	w.model = arg
	w.printf("Model set to %s\n", w.model)
}

func (w *Workbench) readLine() (string, bool) {
	if !w.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(w.in.Text()), true
}
