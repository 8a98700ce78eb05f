package usecase

import (
	"lifeplanner/internal/task/repository"
	"lifeplanner/pkg/daytime"
	"lifeplanner/pkg/gcalendar"
	pkgLog "lifeplanner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	merger     *daytime.Merger
	calendar   *gcalendar.Client // nil disables reminder events
	calendarID string
	timezone   string
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	merger *daytime.Merger,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		merger:     merger,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
