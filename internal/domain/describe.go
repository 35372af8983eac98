package domain

// UnknownRecordType is returned by Describe for anything that is not a
// WeatherRecord.
const UnknownRecordType = "Unknown record type"

// Describe returns a short label for v. Weather records are named by their
// date; every other value, including a nil *WeatherRecord, gets
// UnknownRecordType.
func Describe(v any) string {
	switch rec := v.(type) {
	case WeatherRecord:
		return "Record for date: " + rec.Date.Format(DateLayout)
	case *WeatherRecord:
		if rec == nil {
			return UnknownRecordType
		}
		return "Record for date: " + rec.Date.Format(DateLayout)
	default:
		return UnknownRecordType
	}
}
