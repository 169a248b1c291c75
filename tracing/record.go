package tracing

// ConversionRecord is one row of the conversions table.
type ConversionRecord struct {
	ID                 string  `json:"id"`
	Converter          string  `json:"converter"`
	CircuitID          string  `json:"circuit_id"`
	CircuitName        string  `json:"circuit_name"`
	FromDuration       float64 `json:"from_duration"`
	FromUnit           string  `json:"from_unit"`
	DTInSec            float64 `json:"dt_in_sec"`
	ToDT               int64   `json:"to_dt"`
	RoundingErrorInSec float64 `json:"rounding_error_in_sec"`
	Time               string  `json:"time"`
}

// WarningRecord is one row of the rounding_warnings table.
type WarningRecord struct {
	ID             string  `json:"id"`
	Converter      string  `json:"converter"`
	DT             int64   `json:"dt"`
	ActualInSec    float64 `json:"actual_in_sec"`
	RequestedInSec float64 `json:"requested_in_sec"`
	ErrorInSec     float64 `json:"error_in_sec"`
	Time           string  `json:"time"`
}
