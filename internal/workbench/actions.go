package workbench

import (
	"context"
	"strconv"
	"strings"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/errors"
)

// SubmitText sends text for classification. Empty or whitespace-only input
// produces a validation notice and no request. Any prior result is cleared
// before the request goes out so stale results never show next to a new
// submission.
func (w *Workbench) SubmitText(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		w.printf("Please enter some text to label\n")
		return
	}

	w.result = nil
	w.feedback = FeedbackHidden
	w.correctedLabel = ""

	w.printf("Labeling with %s...\n", w.model)

	result, err := w.client.LabelText(ctx, text, w.model)
	if err != nil {
		if api.IsBusy(err) {
			w.printf("Warning: system busy: %s\n", api.Detail(err, "another request is being processed"))
		} else {
			w.printf("Error: %s\n", api.Detail(err, "Failed to label text"))
		}
		return
	}

	w.result = result
	w.printResult(result)

	// Feedback only applies to an actual prediction.
	if result.PredictedLabel != nil && result.ErrorMessage == "" {
		w.feedback = FeedbackPrompting
	}
}

// SupportPrediction sends agreeing feedback for the current result. The
// payload carries is_supported=true and no corrected label.
func (w *Workbench) SupportPrediction(ctx context.Context) {
	if w.result == nil || w.feedback != FeedbackPrompting {
		return
	}

	if _, err := w.client.SubmitFeedback(ctx, w.result.ID, true, ""); err != nil {
		w.printf("Error: %s\n", api.Detail(err, "Failed to submit feedback"))
		return
	}

	w.printf("Feedback submitted successfully\n")
	w.reset()
}

// BeginCorrection opens the label selection for disagreeing feedback.
func (w *Workbench) BeginCorrection() {
	if w.result == nil || w.feedback != FeedbackPrompting {
		return
	}
	w.feedback = FeedbackCorrecting
}

// CancelCorrection returns to the support prompt, keeping the result and
// discarding any selection.
func (w *Workbench) CancelCorrection() {
	if w.feedback != FeedbackCorrecting {
		return
	}
	w.feedback = FeedbackPrompting
	w.correctedLabel = ""
}

// DismissFeedback closes the feedback prompt without sending anything. The
// result stays on screen.
func (w *Workbench) DismissFeedback() {
	w.feedback = FeedbackHidden
	w.correctedLabel = ""
}

// SelectCorrectionIndex picks a corrected label by its 1-based position in
// the catalog listing.
func (w *Workbench) SelectCorrectionIndex(input string) error {
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(w.labels) {
		return errors.Newf("enter a number between 1 and %d", len(w.labels)).
			Component("workbench").
			Category(errors.CategoryValidation).
			Build()
	}
	w.correctedLabel = w.labels[idx-1]
	return nil
}

// SubmitCorrection sends disagreeing feedback with the selected label. It
// refuses to submit until a catalog label has been chosen.
func (w *Workbench) SubmitCorrection(ctx context.Context) {
	if w.result == nil || w.feedback != FeedbackCorrecting {
		return
	}
	if w.correctedLabel == "" {
		w.printf("Select the correct label before submitting\n")
		return
	}

	if _, err := w.client.SubmitFeedback(ctx, w.result.ID, false, w.correctedLabel); err != nil {
		w.printf("Error: %s\n", api.Detail(err, "Failed to submit feedback"))
		return
	}

	w.printf("Feedback submitted successfully\n")
	w.reset()
}

// reset returns the session to composing with all result and feedback
// state cleared.
func (w *Workbench) reset() {
	w.result = nil
	w.feedback = FeedbackHidden
	w.correctedLabel = ""
}
