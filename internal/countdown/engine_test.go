package countdown

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/akyairhashvil/tdelta/internal/models"
	"github.com/akyairhashvil/tdelta/internal/util"
)

func TestComputeRemainingExamples(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		target string
		want   models.RemainingTime
	}{
		{"one day and change", "2024-01-02T01:02:03", models.RemainingTime{Days: 1, Hours: 1, Minutes: 2, Seconds: 3}},
		{"minute layout", "2024-01-01T09:30", models.RemainingTime{Hours: 9, Minutes: 30}},
		{"past", "2023-12-31T23:59:59", models.RemainingTime{}},
		{"exactly now", "2024-01-01T00:00", models.RemainingTime{}},
		{"padded input", "  2024-01-01T00:00:45  ", models.RemainingTime{Seconds: 45}},
		{"fraction floors", "2024-01-01T00:00:01.999", models.RemainingTime{Seconds: 1}},
		{"offset", "2024-01-01T02:00:00+01:00", models.RemainingTime{Hours: 1}},
		{"date only is utc midnight", "2024-01-03", models.RemainingTime{Days: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeRemaining(tc.target, now)
			if err != nil {
				t.Fatalf("ComputeRemaining(%q) error: %v", tc.target, err)
			}
			if got != tc.want {
				t.Fatalf("ComputeRemaining(%q) = %+v, want %+v", tc.target, got, tc.want)
			}
		})
	}
}

func TestComputeRemainingInvalid(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"", "   ", "tomorrow", "2024-13-01T00:00", "2024-01-01 10:00", "01/02/2024"} {
		_, err := ComputeRemaining(in, now)
		if !errors.Is(err, ErrInvalidTarget) {
			t.Fatalf("ComputeRemaining(%q) err = %v, want ErrInvalidTarget", in, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Input != in {
			t.Fatalf("expected ParseError for %q, got %v", in, err)
		}
	}
}

func TestComputeRemainingUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, loc)
	got, err := ComputeRemaining("2024-06-01T09:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (models.RemainingTime{Hours: 1}) {
		t.Fatalf("got %+v, want 1h", got)
	}
}

func TestRemainingBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		diff := time.Duration(rng.Int63n(int64(400*day))) + time.Millisecond
		r := Remaining(now.Add(diff), now)
		low := time.Duration(r.Days)*day + time.Duration(r.Hours)*time.Hour +
			time.Duration(r.Minutes)*time.Minute + time.Duration(r.Seconds)*time.Second
		if low > diff || diff >= low+time.Second {
			t.Fatalf("diff %v decomposed to %+v", diff, r)
		}
		if r.Hours > 23 || r.Minutes > 59 || r.Seconds > 59 {
			t.Fatalf("unit overflow for %v: %+v", diff, r)
		}
		if r.Days < 0 || r.Hours < 0 || r.Minutes < 0 || r.Seconds < 0 {
			t.Fatalf("negative unit for %v: %+v", diff, r)
		}
	}
}

func TestRemainingPastIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		diff := time.Duration(rng.Int63n(int64(400 * day)))
		if r := Remaining(now.Add(-diff), now); !r.IsZero() {
			t.Fatalf("target %v in the past gave %+v", diff, r)
		}
	}
}

func TestComputeRemainingIsPure(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, errA := ComputeRemaining("2024-02-10T12:34", now)
	b, errB := ComputeRemaining("2024-02-10T12:34", now)
	if a != b || errA != nil || errB != nil {
		t.Fatalf("repeated calls differ: %+v/%v vs %+v/%v", a, errA, b, errB)
	}
}

func TestDefaultTarget(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, 3, 14, 23, 50, 0, 0, time.Local), "2024-03-15T09:00"},
		{time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC), "2024-02-29T09:00"},
		{time.Date(2023, 12, 31, 0, 0, 1, 0, time.UTC), "2024-01-01T09:00"},
	}
	for _, tc := range cases {
		if got := DefaultTarget(tc.now); got != tc.want {
			t.Fatalf("DefaultTarget(%v) = %q, want %q", tc.now, got, tc.want)
		}
	}
}

func TestResolveMode(t *testing.T) {
	cases := []struct {
		name      string
		target    string
		remaining *models.RemainingTime
		want      models.DisplayMode
	}{
		{"empty wins over finished", "", &models.RemainingTime{}, models.ModeAwaitingInput},
		{"blank target", "  ", nil, models.ModeAwaitingInput},
		{"finished", "2024-01-01T00:00", &models.RemainingTime{}, models.ModeFinished},
		{"counting", "2024-01-01T00:00", util.Ptr(models.RemainingTime{Seconds: 1}), models.ModeCounting},
		{"invalid", "nope", nil, models.ModeNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMode(tc.target, tc.remaining); got != tc.want {
				t.Fatalf("ResolveMode = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s := Evaluate("2023-12-31T23:59:59", now)
	if s.Mode != models.ModeFinished || s.Remaining == nil || !s.Remaining.IsZero() {
		t.Fatalf("expected finished snapshot, got %+v", s)
	}

	s = Evaluate("", now)
	if s.Mode != models.ModeAwaitingInput || s.Remaining != nil || s.Err != nil {
		t.Fatalf("expected awaiting snapshot, got %+v", s)
	}

	s = Evaluate("garbage", now)
	if s.Mode != models.ModeNone || s.Remaining != nil || !errors.Is(s.Err, ErrInvalidTarget) {
		t.Fatalf("expected invalid snapshot, got %+v", s)
	}

	s = Evaluate("2024-01-02T01:02:03", now)
	if s.Mode != models.ModeCounting || !s.At.Equal(now) {
		t.Fatalf("expected counting snapshot, got %+v", s)
	}
}
