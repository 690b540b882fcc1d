package types

// Step represents the current screen of the training flow
type Step string

const (
	StepIntro        Step = "intro"
	StepFetching     Step = "fetching"
	StepReading      Step = "reading"
	StepSummaryOne   Step = "summary_one"
	StepSummaryThree Step = "summary_three"
	StepFeedback     Step = "feedback"
)
