package service

import (
	"context"
	"time"

	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/metrics"
	"seasonal_calc/internal/models"
)

// ThawService turns thaw parameters into a plan and keeps the countdown in step with it.
type ThawService struct {
	countdown Countdown
	loc       *time.Location
	now       func() time.Time
	log       *logger.Logger
}

func NewThawService(countdown Countdown, loc *time.Location, log *logger.Logger) *ThawService {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ThawService{
		countdown: countdown,
		loc:       loc,
		now:       time.Now,
		log:       log,
	}
}

// Plan validates p, cancels the running countdown, computes the thaw, and arms a
// new countdown when the result has a schedule. An unparsable target time is
// returned as ErrInvalidTargetTime and leaves the countdown idle.
func (s *ThawService) Plan(ctx context.Context, p models.ThawParams) (models.ThawPlan, error) {
	if err := ctx.Err(); err != nil {
		return models.ThawPlan{}, err
	}
	if err := ValidateThawParams(p); err != nil {
		return models.ThawPlan{}, err
	}

	s.countdown.Cancel()

	now := s.now()
	res, err := ComputeThaw(p, now, s.loc)
	if err != nil {
		s.log.Infow("thaw_target_rejected", "target_time", p.TargetTime, "err", err)
		return models.ThawPlan{}, err
	}

	w, scheduled := res.Window()

	plan := models.ThawPlan{
		Result:       res,
		TotalText:    FormatDuration(res.TotalHours),
		BufferHours:  BufferHours,
		MethodHint:   MethodHint(p.Method),
		SafetyNote:   SafetyNote(p.Method),
		ScheduleNote: ScheduleNote(scheduled),
		LateWarning:  LateWarning(p.Method, res.IsBehindSchedule),
		StartText:    StartText(nil),
	}

	if scheduled {
		start := w.Start.In(s.loc)
		plan.StartText = StartText(&start)

		s.countdown.Start(w)
		st := s.countdown.CurrentState()
		st.Message = planCountdownMessage(st.Phase)
		plan.Countdown = &st
	}

	metrics.IncreaseThawPlansMetric(string(p.Method), res.IsBehindSchedule)
	s.log.Infow("thaw_planned",
		"method", p.Method,
		"total_hours", res.TotalHours,
		"scheduled", scheduled,
		"behind_schedule", res.IsBehindSchedule,
	)
	return plan, nil
}
