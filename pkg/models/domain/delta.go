package domain

// ChangeDirection labels a percent change for presentation.
type ChangeDirection string

const (
	ChangeUp   ChangeDirection = "up"
	ChangeDown ChangeDirection = "down"
	ChangeFlat ChangeDirection = "flat"
)

// MetricDelta is one metric's period-over-period (or property-over-baseline)
// movement.
type MetricDelta struct {
	Metric        string
	Current       float64
	Previous      float64
	ChangePercent float64
	Direction     ChangeDirection
}
