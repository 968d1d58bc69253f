package metrics

// Sample is one biometric measurement bucket for a member. Series handed
// to the projector must already be in ascending time order; the projector
// does not sort defensively, and a shuffled series yields meaningless
// delta signs.
type Sample struct {
	Month  string  `json:"month"`
	Weight float64 `json:"weight"`
	Fat    float64 `json:"fat"`
	Muscle float64 `json:"muscle"`
}

// Horizon selects how much trailing history feeds a trend report. Zero
// means the whole series.
type Horizon int

const (
	HorizonAll       Horizon = 0
	HorizonSixMonths Horizon = 6
	HorizonOneYear   Horizon = 12
)

// ForecastPoint is the synthetic projected sample appended to a copy of
// the series for display. It never enters the historical record. The
// projection is a damped last-two-point trend, not a fitted regression;
// it is illustrative, not predictive-grade.
type ForecastPoint struct {
	Weight float64 `json:"weight"`
	Fat    float64 `json:"fat"`
}

// TrendReport is the derived view of one member's biometric series.
type TrendReport struct {
	// Samples is the windowed copy of the input series.
	Samples []Sample `json:"samples"`
	// Sufficient is false when the window holds fewer than two samples.
	// In that case no delta, BMI or forecast values are produced; a zero
	// delta would falsely read as "no change".
	Sufficient bool `json:"sufficient"`
	// MuscleDelta is latest minus first muscle mass inside the window.
	// Positive means hypertrophy.
	MuscleDelta float64 `json:"muscle_delta"`
	// FatLoss is first minus latest body-fat percent inside the window.
	// Positive means fat was lost.
	FatLoss float64 `json:"fat_loss"`
	// BMI is derived from the latest weight and the member height.
	// BMIKnown is false when the height is missing or non-positive.
	BMI      float64 `json:"bmi"`
	BMIKnown bool    `json:"bmi_known"`
	// Forecast is the projected next point, nil when insufficient data.
	Forecast *ForecastPoint `json:"forecast,omitempty"`
}

// Window copies the trailing slice of the series selected by the horizon.
// The input is never aliased so callers can mutate the result freely.
func Window(series []Sample, h Horizon) []Sample {
	n := len(series)
	if h > 0 && int(h) < n {
		series = series[n-int(h):]
	}
	out := make([]Sample, len(series))
	copy(out, series)
	return out
}

// ProjectTrend computes delta metrics and a one-step forecast over the
// windowed series. Deltas span the window, not the full history, so a
// six-month view reports six-month progress. heightCm of zero or less
// marks BMI unavailable.
func ProjectTrend(series []Sample, h Horizon, heightCm float64) TrendReport {
	window := Window(series, h)
	report := TrendReport{Samples: window}
	if len(window) < 2 {
		return report
	}
	report.Sufficient = true

	first := window[0]
	latest := window[len(window)-1]
	report.MuscleDelta = latest.Muscle - first.Muscle
	report.FatLoss = first.Fat - latest.Fat

	if heightCm > 0 {
		heightM := heightCm / 100
		report.BMI = latest.Weight / (heightM * heightM)
		report.BMIKnown = true
	}

	prev := window[len(window)-2]
	report.Forecast = &ForecastPoint{
		Weight: latest.Weight + ForecastDamping*(latest.Weight-prev.Weight),
		Fat:    latest.Fat + ForecastDamping*(latest.Fat-prev.Fat),
	}
	return report
}
