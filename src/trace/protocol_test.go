package trace

import (
	"errors"
	"testing"
)

func TestParseProtocol(t *testing.T) {
	for _, p := range Protocols {
		got, err := ParseProtocol(" " + string(p) + " ")
		if err != nil {
			t.Fatalf("parse %s: %v", p, err)
		}
		if got != p {
			t.Fatalf("expected %s got %s", p, got)
		}
	}
	for _, bad := range []string{"", "TcpCubic", "tcpdctcp"} {
		if _, err := ParseProtocol(bad); !errors.Is(err, ErrUnsupportedProtocol) {
			t.Fatalf("expected ErrUnsupportedProtocol for %q got %v", bad, err)
		}
	}
}

func TestCanonicalOrder(t *testing.T) {
	want := []Protocol{TcpNewReno, TcpDctcp, TcpDctcpPlus}
	if len(Protocols) != len(want) {
		t.Fatalf("expected %d protocols got %d", len(want), len(Protocols))
	}
	for i := range want {
		if Protocols[i] != want[i] {
			t.Fatalf("index %d: expected %s got %s", i, want[i], Protocols[i])
		}
	}
}

func TestStylesAreDistinct(t *testing.T) {
	seen := map[Style]Protocol{}
	for _, p := range Protocols {
		s := StyleFor(p)
		if other, ok := seen[s]; ok {
			t.Fatalf("%s and %s share a style", p, other)
		}
		seen[s] = p
	}
	if StyleFor("unknown") != DefaultStyle {
		t.Fatalf("unknown protocol should fall back to DefaultStyle")
	}
	if s := StyleFor(TcpNewReno); s.Marker != MarkerStar || s.LineStyle != LineDashDot {
		t.Fatalf("unexpected NewReno style %+v", s)
	}
}
