package costs

// Trend classifications returned by Analyze.
const (
	TrendIncreasing   = "increasing"
	TrendDecreasing   = "decreasing"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"
)

const (
	trendWindow    = 7
	trendThreshold = 0.1
)

type Analysis struct {
	Total            float64            `json:"total"`
	AverageDaily     float64            `json:"average_daily"`
	ServiceBreakdown map[string]float64 `json:"service_breakdown"`
	PeakDay          DailyCost          `json:"peak_day"`
	Trend            string             `json:"trend"`
}

// Analyze derives aggregate statistics from a fetched cost report.
func Analyze(report *CostReport) Analysis {
	analysis := Analysis{
		ServiceBreakdown: make(map[string]float64),
		Trend:            TrendInsufficient,
	}
	if report == nil || len(report.DailyCosts) == 0 {
		return analysis
	}

	for _, day := range report.DailyCosts {
		analysis.Total += day.Amount
		if day.Amount > analysis.PeakDay.Amount {
			analysis.PeakDay = day
		}
	}
	analysis.AverageDaily = analysis.Total / float64(len(report.DailyCosts))

	for service, amount := range report.ServiceCosts {
		analysis.ServiceBreakdown[service] = amount
	}

	analysis.Trend = classifyTrend(report.DailyCosts)
	return analysis
}

// classifyTrend compares the mean of the most recent daily totals
// against the mean of the earliest ones. The window is 7 days when
// enough data exists, otherwise half the range.
func classifyTrend(daily []DailyCost) string {
	if len(daily) < 2 {
		return TrendInsufficient
	}

	window := trendWindow
	if half := len(daily) / 2; half < window {
		window = half
	}

	earliest := mean(daily[:window])
	recent := mean(daily[len(daily)-window:])

	if earliest == 0 {
		if recent > 0 {
			return TrendIncreasing
		}
		return TrendStable
	}

	switch ratio := recent / earliest; {
	case ratio > 1+trendThreshold:
		return TrendIncreasing
	case ratio < 1-trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func mean(daily []DailyCost) float64 {
	if len(daily) == 0 {
		return 0
	}
	var sum float64
	for _, day := range daily {
		sum += day.Amount
	}
	return sum / float64(len(daily))
}
