package directions

import (
	"errors"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/geo"
	"strings"
	"testing"
)

var (
	ptA = geo.MustPoint(32000000, 35000000)
	ptB = geo.MustPoint(32001000, 35000000)
	ptC = geo.MustPoint(32002000, 35000000)
	ptD = geo.MustPoint(32002000, 35001000)
)

func mainOakRoute() domain.Route {
	return domain.MustRoute(domain.MustSegment("Main St", ptA, ptB)).
		MustAppend(domain.MustSegment("Main St", ptB, ptC)).
		MustAppend(domain.MustSegment("Oak Ave", ptC, ptD))
}

func TestTurnPhraseBoundaries(t *testing.T) {
	tests := []struct {
		origin, next float64
		want         string
	}{
		{0, 0, Continue},
		{0, 9.99, Continue},
		{0, -9.99, Continue},
		{0, 10, TurnSlightRight},
		{90, 100, TurnSlightRight},
		{0, 59.99, TurnSlightRight},
		{0, 60, TurnRight},
		{0, 119.99, TurnRight},
		{0, 120, TurnSharpRight},
		{0, 178.99, TurnSharpRight},
		{0, 179, UTurn},
		{0, 359, UTurn},
		{0, -10.01, TurnSlightLeft},
		{0, -60, TurnSlightLeft},
		{0, -60.01, TurnLeft},
		{0, -120, TurnLeft},
		{0, -120.01, TurnSharpLeft},
		{0, -178.99, TurnSharpLeft},
		{0, -179, UTurn},
		{359, 0, UTurn},
	}

	for _, tc := range tests {
		if got := TurnPhrase(tc.origin, tc.next); got != tc.want {
			t.Errorf("TurnPhrase(%v, %v) = %q, want %q", tc.origin, tc.next, got, tc.want)
		}
	}
}

// A heading change of exactly -10 falls between "Continue" (-10 < a) and
// "Turn slight left" (a < -10). The classification keeps that gap.
func TestTurnPhraseMinusTenGap(t *testing.T) {
	if got := TurnPhrase(0, -10); got != "" {
		t.Fatalf("TurnPhrase(0, -10) = %q, want empty phrase", got)
	}
	if got := TurnPhrase(100, 90); got != "" {
		t.Fatalf("TurnPhrase(100, 90) = %q, want empty phrase", got)
	}
	if got := TurnPhrase(0, 10); got != TurnSlightRight {
		t.Fatalf("TurnPhrase(0, 10) = %q, want %q", got, TurnSlightRight)
	}
}

func TestTurnPhraseDoesNotWrap(t *testing.T) {
	if got := TurnPhrase(350, 10); got != UTurn {
		t.Fatalf("TurnPhrase(350, 10) = %q, want %q", got, UTurn)
	}
	if got := TurnPhrase(10, 350); got != UTurn {
		t.Fatalf("TurnPhrase(10, 350) = %q, want %q", got, UTurn)
	}
}

func TestNormalizedTurnPhrase(t *testing.T) {
	tests := []struct {
		origin, next float64
		want         string
	}{
		{350, 10, TurnSlightRight},
		{10, 350, TurnSlightLeft},
		{270, 0, TurnRight},
		{0, 270, TurnLeft},
		{0, 180, UTurn},
		{180, 0, UTurn},
		{90, 95, Continue},
		{0, -10, ""},
	}

	for _, tc := range tests {
		if got := NormalizedTurnPhrase(tc.origin, tc.next); got != tc.want {
			t.Errorf("NormalizedTurnPhrase(%v, %v) = %q, want %q", tc.origin, tc.next, got, tc.want)
		}
	}
}

func TestComputeDirectionsDriving(t *testing.T) {
	r := mainOakRoute()

	got := ComputeDirections(DrivingFormatter{}, r, r.StartHeading())
	want := "Continue onto Main St and go 0.2 kilometers.\n" +
		"Turn right onto Oak Ave and go 0.1 kilometers.\n"
	if got != want {
		t.Fatalf("directions =\n%s\nwant\n%s", got, want)
	}
}

func TestComputeDirectionsWalking(t *testing.T) {
	r := mainOakRoute()

	got := ComputeDirections(WalkingFormatter{}, r, 90)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), got)
	}
	if lines[0] != "Turn left onto Main St and walk for 3 minutes." {
		t.Fatalf("first line = %q", lines[0])
	}
	if lines[1] != "Turn right onto Oak Ave and walk for 1 minutes." {
		t.Fatalf("second line = %q", lines[1])
	}
}

type recordingFormatter struct {
	names    []string
	headings []float64
}

func (r *recordingFormatter) ComputeLine(f domain.Feature, originHeading float64) string {
	r.names = append(r.names, f.Name())
	r.headings = append(r.headings, originHeading)
	return f.Name() + "\n"
}

func TestComputeDirectionsThreadsHeading(t *testing.T) {
	r := mainOakRoute().MustAppend(domain.MustSegment("Elm St", ptD, ptC))
	rec := &recordingFormatter{}

	got := ComputeDirections(rec, r, 45)
	if got != "Main St\nOak Ave\nElm St\n" {
		t.Fatalf("directions = %q", got)
	}

	features := r.Features()
	want := []float64{45, features[0].EndHeading(), features[1].EndHeading()}
	for i := range want {
		if rec.headings[i] != want[i] {
			t.Fatalf("heading %d = %v, want %v", i, rec.headings[i], want[i])
		}
	}
}

func TestWalkingMinutes(t *testing.T) {
	if got := WalkingMinutes(kmPerMile); got != MinutesPerMile {
		t.Fatalf("WalkingMinutes(1 mile) = %d, want %d", got, MinutesPerMile)
	}
	if got := WalkingMinutes(0); got != 0 {
		t.Fatalf("WalkingMinutes(0) = %d, want 0", got)
	}
}

func TestFormatterByName(t *testing.T) {
	lf, err := FormatterByName(" Walking ", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, ok := lf.(WalkingFormatter); !ok || !w.Normalize {
		t.Fatalf("formatter = %#v, want normalized WalkingFormatter", lf)
	}

	if _, err := FormatterByName("cycling", false); !errors.Is(err, ErrUnknownFormatter) {
		t.Fatalf("err = %v, want ErrUnknownFormatter", err)
	}
}
