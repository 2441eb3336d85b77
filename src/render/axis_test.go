package render

import (
	"testing"
)

func TestBuildAxisZeroAnchored(t *testing.T) {
	rng, ticks := buildAxis(13, 93, 6, true)
	if rng.Min != 0 {
		t.Fatalf("expected zero anchor got %v", rng.Min)
	}
	if rng.Max < 93 {
		t.Fatalf("range max %v below data max", rng.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("expected >=2 ticks got %d", len(ticks))
	}
	if ticks[0].Value != 0 {
		t.Fatalf("first tick should be 0 got %v", ticks[0].Value)
	}
}

func TestFlowCountAxisNeverNegative(t *testing.T) {
	rng, ticks := buildAxis(1, 64, 8, false)
	if rng.Min != 0 {
		t.Fatalf("flows 1..64: expected axis to start at 0 got %v", rng.Min)
	}
	if rng.Max < 64 {
		t.Fatalf("flows 1..64: range max %v below data", rng.Max)
	}
	for _, tk := range ticks {
		if tk.Value < 0 {
			t.Fatalf("negative tick %v on a flow count axis", tk.Value)
		}
	}
	if len(ticks) > 9 {
		t.Fatalf("asked for about 8 ticks got %d", len(ticks))
	}
}

func TestBuildAxisKeepsNegativeData(t *testing.T) {
	rng, _ := buildAxis(-3, 5, 6, true)
	if rng.Min > -3 || rng.Max < 5 {
		t.Fatalf("range [%v,%v] does not cover [-3,5]", rng.Min, rng.Max)
	}
}

func TestBuildAxisDegenerateRange(t *testing.T) {
	rng, ticks := buildAxis(16, 16, 8, false)
	if rng.Min >= rng.Max {
		t.Fatalf("expected widened range; got %v >= %v", rng.Min, rng.Max)
	}
	if rng.Min > 16 || rng.Max < 16 {
		t.Fatalf("range [%v,%v] excludes the data", rng.Min, rng.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("expected >=2 ticks got %d", len(ticks))
	}
}

func TestBuildAxisCoversData(t *testing.T) {
	cases := [][2]float64{{1, 64}, {0.5, 2.5}, {100, 4000}, {7, 9}, {40, 80}}
	for _, c := range cases {
		rng, ticks := buildAxis(c[0], c[1], 8, false)
		if rng.Min >= c[0] || rng.Max <= c[1] {
			t.Fatalf("range [%v,%v] does not strictly cover [%v,%v]", rng.Min, rng.Max, c[0], c[1])
		}
		if ticks[0].Value != rng.Min || ticks[len(ticks)-1].Value != rng.Max {
			t.Fatalf("ticks %v do not span range [%v,%v]", ticks, rng.Min, rng.Max)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i].Value <= ticks[i-1].Value {
				t.Fatalf("ticks not increasing: %v", ticks)
			}
		}
	}
}

func TestRoundStep(t *testing.T) {
	cases := map[float64]float64{9: 10, 0.143: 0.2, 18.6: 20, 2.2: 2.5, 0.3: 0.5, 1: 1, 0: 1}
	for raw, want := range cases {
		if got := roundStep(raw); got != want {
			t.Fatalf("roundStep(%v) = %v want %v", raw, got, want)
		}
	}
}

func TestTickLabelsFollowStep(t *testing.T) {
	cases := []struct {
		scale axisScale
		want  []string
	}{
		{axisScale{first: 0, last: 2, step: 10}, []string{"0", "10", "20"}},
		{axisScale{first: 0, last: 2, step: 2.5}, []string{"0.0", "2.5", "5.0"}},
		{axisScale{first: 77, last: 79, step: 0.2}, []string{"15.4", "15.6", "15.8"}},
	}
	for _, c := range cases {
		ticks := c.scale.ticks()
		if len(ticks) != len(c.want) {
			t.Fatalf("%+v: got %d ticks want %d", c.scale, len(ticks), len(c.want))
		}
		for i, tk := range ticks {
			if tk.Label != c.want[i] {
				t.Fatalf("%+v: label %d = %q want %q", c.scale, i, tk.Label, c.want[i])
			}
		}
	}
}
