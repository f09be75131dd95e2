package web

import "time"

// Kiosk rotation. The old kiosk flipped its panes on browser intervals; a
// server-rendered page has no resident loop, so each render derives the
// same indices from wall-clock time and the page refreshes itself. Periods
// are unchanged: sections every 15s, eventos and banners every 10s.
const (
	sectionPeriod = 15 * time.Second
	eventoPeriod  = 10 * time.Second
	bannerPeriod  = 10 * time.Second
)

const (
	sectionMenu   = "menu"
	sectionPromos = "promos"
)

// kioskSection alternates menu/promos.
func kioskSection(t time.Time) string {
	if (t.Unix()/int64(sectionPeriod.Seconds()))%2 == 0 {
		return sectionMenu
	}
	return sectionPromos
}

// rotationIndex cycles 0..n-1, advancing once per period.
func rotationIndex(t time.Time, period time.Duration, n int) int {
	if n <= 1 {
		return 0
	}
	return int((t.Unix() / int64(period.Seconds())) % int64(n))
}

// kioskRefreshSeconds is the meta-refresh interval: the shortest rotation
// period, so no slide change is ever missed.
func kioskRefreshSeconds() int {
	return int(eventoPeriod.Seconds())
}
