package util

import "time"

// Timestamps are presented to clients as IST locale strings (the product's
// display timezone). At rest they are plain time.Time values; formatting
// happens only here, at the presentation boundary.

var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST; a fixed offset is equivalent
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}()

// FormatIST renders a timestamp as "1/2/2006, 3:04:05 PM" in IST.
func FormatIST(t time.Time) string {
	return t.In(istLocation).Format("1/2/2006, 3:04:05 PM")
}

// FormatISTPtr renders an optional timestamp; nil becomes the empty string.
func FormatISTPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatIST(*t)
}
