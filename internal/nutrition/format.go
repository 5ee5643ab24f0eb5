package nutrition

import "time"

// FormatDate renders a history timestamp relative to now: "Today at 03:04 PM",
// "Yesterday at 09:15 AM", "Mar 7" within the current year, "Mar 7, 2023"
// otherwise. Calendar days are taken in now's location.
func FormatDate(ts, now time.Time) string {
	ts = ts.In(now.Location())

	switch {
	case sameDay(ts, now):
		return "Today at " + ts.Format("03:04 PM")
	case sameDay(ts, now.AddDate(0, 0, -1)):
		return "Yesterday at " + ts.Format("03:04 PM")
	case ts.Year() != now.Year():
		return ts.Format("Jan 2, 2006")
	default:
		return ts.Format("Jan 2")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
