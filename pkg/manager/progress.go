package manager

// ProgressFunc receives the completed fraction of a task run, in [0, 1].
type ProgressFunc func(fraction float64)

// tracker reports fractional progress over a run:
// (series completed + episode fraction of current series) / total series.
// Reported values never decrease even if per-series episode counts shift
// mid-run.
type tracker struct {
	totalSeries int
	doneSeries  int
	last        float64
	report      ProgressFunc
}

func newTracker(totalSeries int, report ProgressFunc) *tracker {
	return &tracker{totalSeries: totalSeries, report: report}
}

// episode reports progress within the current series.
func (t *tracker) episode(done, count int) {
	if count <= 0 {
		return
	}
	t.publish(float64(t.doneSeries) + float64(done)/float64(count))
}

// series marks the current series complete.
func (t *tracker) series() {
	t.doneSeries++
	t.publish(float64(t.doneSeries))
}

func (t *tracker) publish(units float64) {
	if t.report == nil || t.totalSeries <= 0 {
		return
	}

	fraction := units / float64(t.totalSeries)
	if fraction < t.last {
		fraction = t.last
	}
	if fraction > 1 {
		fraction = 1
	}

	t.last = fraction
	t.report(fraction)
}
