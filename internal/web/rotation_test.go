package web

import (
	"testing"
	"time"
)

func TestKioskSectionAlternates(t *testing.T) {
	t0 := time.Unix(0, 0)
	if got := kioskSection(t0); got != sectionMenu {
		t.Errorf("kioskSection(t0) = %q, want %q", got, sectionMenu)
	}
	if got := kioskSection(t0.Add(sectionPeriod)); got != sectionPromos {
		t.Errorf("kioskSection(t0+15s) = %q, want %q", got, sectionPromos)
	}
	if got := kioskSection(t0.Add(2 * sectionPeriod)); got != sectionMenu {
		t.Errorf("kioskSection(t0+30s) = %q, want %q", got, sectionMenu)
	}
	// Stable within a period.
	if kioskSection(t0.Add(7*time.Second)) != kioskSection(t0) {
		t.Error("la sección cambió dentro del mismo período")
	}
}

func TestRotationIndex(t *testing.T) {
	t0 := time.Unix(0, 0)

	if got := rotationIndex(t0, eventoPeriod, 0); got != 0 {
		t.Errorf("rotationIndex(n=0) = %d, want 0", got)
	}
	if got := rotationIndex(t0.Add(time.Hour), eventoPeriod, 1); got != 0 {
		t.Errorf("rotationIndex(n=1) = %d, want 0", got)
	}

	// With 3 slides the index advances once per period and wraps.
	for i := 0; i < 6; i++ {
		at := t0.Add(time.Duration(i) * eventoPeriod)
		if got := rotationIndex(at, eventoPeriod, 3); got != i%3 {
			t.Errorf("rotationIndex(+%d períodos, n=3) = %d, want %d", i, got, i%3)
		}
	}
}

func TestKioskRefreshMatchesShortestPeriod(t *testing.T) {
	if got := kioskRefreshSeconds(); got != 10 {
		t.Errorf("kioskRefreshSeconds() = %d, want 10", got)
	}
}
