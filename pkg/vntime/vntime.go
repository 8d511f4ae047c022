// Package vntime formats timestamps the way the Vietnamese UI displays them.
package vntime

import "time"

const (
	TimeLayout = "15:04:05"
	DateLayout = "02/01/2006"
)

// Location is Asia/Ho_Chi_Minh, or a fixed UTC+7 zone when tzdata is missing.
var Location = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

func FormatTime(t time.Time) string { return t.In(Location).Format(TimeLayout) }

func FormatDate(t time.Time) string { return t.In(Location).Format(DateLayout) }
