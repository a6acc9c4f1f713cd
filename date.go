package tracker

import "time"

// DayFormat is the format used to represent calendar-day keys in ISO-8601 format.
const DayFormat = "2006-01-02"

// DayKey truncates a timestamp to its calendar-day key, in the timestamp's
// own location. Daily aggregations bucket by this key.
func DayKey(t time.Time) string { return t.Format(DayFormat) }
