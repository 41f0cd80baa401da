package weather

// NextHours returns the rolling 24-hour window starting at the hour of
// nowLocal: the rest of today followed by as many of tomorrow's hours as are
// needed to reach HoursPerDay. A missing tomorrow gives a shorter window.
// Missing data or an unreadable nowLocal gives an empty window.
func NextHours(bundle ForecastBundle, nowLocal string) []HourlyRecord {
	hour, ok := LocalHour(nowLocal)
	if !ok {
		return []HourlyRecord{}
	}
	return Window(bundle.Day(0), bundle.Day(1), hour)
}

// Window is NextHours with the hour already extracted. Hours outside 0-23
// or a today without hours give an empty window. The result never aliases
// the input slices.
func Window(today, tomorrow *DailyForecast, hour int) []HourlyRecord {
	if today == nil || len(today.Hours) == 0 || hour < 0 || hour >= HoursPerDay {
		return []HourlyRecord{}
	}

	var current []HourlyRecord
	if hour < len(today.Hours) {
		current = today.Hours[hour:]
	}

	remaining := HoursPerDay - len(current)
	var next []HourlyRecord
	if remaining > 0 && tomorrow != nil {
		next = tomorrow.Hours[:min(remaining, len(tomorrow.Hours))]
	}

	out := make([]HourlyRecord, 0, len(current)+len(next))
	out = append(out, current...)
	return append(out, next...)
}
