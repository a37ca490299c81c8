package workbench

// FeedbackState is the feedback sub-flow of the labeling session. It is an
// explicit tagged variant: hidden until a result with a prediction arrives,
// prompting while the support question is open, correcting while a
// replacement label is being chosen.
type FeedbackState int

const (
	FeedbackHidden FeedbackState = iota
	FeedbackPrompting
	FeedbackCorrecting
)

func (s FeedbackState) String() string {
	switch s {
	case FeedbackHidden:
		return "hidden"
	case FeedbackPrompting:
		return "prompting"
	case FeedbackCorrecting:
		return "correcting"
	default:
		return "unknown"
	}
}
