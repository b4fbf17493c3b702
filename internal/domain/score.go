package domain

// ScoreRisk converts measurements into a run/cancel probability. tod is the
// departure hour (0–24, fractional); nil skips the time-of-day penalty.
//
// Penalties are additive and unclamped individually; only the final score is
// clamped to [MinScore, MaxScore]. Both seas thresholds can fire together,
// while the two period thresholds are exclusive.
func ScoreRisk(m Measurements, tod *float64, cfg ModelConfig) RiskAssessment {
	score := cfg.BaseScore

	if m.SeasFt > cfg.SeasThreshold1 {
		score -= (m.SeasFt - cfg.SeasThreshold1) * cfg.SeasPenalty1
	}
	if m.SeasFt > cfg.SeasThreshold2 {
		score -= (m.SeasFt - cfg.SeasThreshold2) * cfg.SeasPenalty2
	}

	if m.WindKt > cfg.WindThreshold {
		score -= (m.WindKt - cfg.WindThreshold) * cfg.WindPenalty
	}
	if m.GustKt > cfg.GustThreshold {
		score -= (m.GustKt - cfg.GustThreshold) * cfg.GustPenalty
	}

	// Short, steep seas are worse for a fast ferry.
	if m.PeriodS < cfg.PeriodThreshold1 {
		score -= (cfg.PeriodThreshold1 - m.PeriodS) * cfg.PeriodPenalty1
	} else if m.PeriodS < cfg.PeriodThreshold2 {
		score -= (cfg.PeriodThreshold2 - m.PeriodS) * cfg.PeriodPenalty2
	}

	if tod != nil && inAnyWindow(cfg.TODWindows, *tod) {
		score -= cfg.TODPenalty
	}

	score = max(cfg.MinScore, min(cfg.MaxScore, score))

	probRun := score / 100.0
	return RiskAssessment{
		Score:      score,
		ProbRun:    probRun,
		ProbCancel: 1.0 - probRun,
		Band:       cfg.Bands.Band(probRun),
	}
}

func inAnyWindow(windows []HourWindow, hour float64) bool {
	for _, w := range windows {
		if w.Contains(hour) {
			return true
		}
	}
	return false
}
