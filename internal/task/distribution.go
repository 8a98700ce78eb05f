package task

import "lifeplanner/internal/model"

// User-facing balance messages, shown at most once per distribution view.
const (
	MessageFavorSelfCare = "You've spent more time on work today. Don't forget to prioritise yourself!"
	MessageEncouragement = "Well done! You've prioritised your personal time today. Keep up the great balance!"
)

// AnalyzeDistribution sums task durations per category in minutes and
// derives the balance signal. Tasks outside {Work, Personal} contribute
// to neither total. Equal nonzero totals produce no signal.
func AnalyzeDistribution(tasks []model.Task) Distribution {
	var work, personal float64

	for _, t := range tasks {
		minutes := t.Duration().Minutes()
		switch t.Category {
		case model.CategoryWork:
			work += minutes
		case model.CategoryPersonal:
			personal += minutes
		}
	}

	dist := Distribution{
		WorkMinutes:     work,
		PersonalMinutes: personal,
		Signal:          SignalNone,
	}

	switch {
	case work > personal:
		dist.Signal = SignalFavorSelfCare
		dist.Message = MessageFavorSelfCare
	case personal > work:
		dist.Signal = SignalEncouragement
		dist.Message = MessageEncouragement
	}

	return dist
}
