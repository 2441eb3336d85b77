package trace

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Protocol names a congestion-control variant as used for the simulator's tcpTypeId
// and for the per-protocol trace directory.
type Protocol string

const (
	TcpNewReno   Protocol = "TcpNewReno"
	TcpDctcp     Protocol = "TcpDctcp"
	TcpDctcpPlus Protocol = "TcpDctcpPlus"
)

// Protocols lists every supported variant in canonical order. Overlay charts and
// their legends always follow this order.
var Protocols = []Protocol{TcpNewReno, TcpDctcp, TcpDctcpPlus}

// ErrUnsupportedProtocol is returned for names outside Protocols.
var ErrUnsupportedProtocol = errors.New("unsupported protocol")

// ParseProtocol maps a name to a Protocol. Matching is exact after trimming.
func ParseProtocol(name string) (Protocol, error) {
	name = strings.TrimSpace(name)
	for _, p := range Protocols {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedProtocol, name, protocolList())
}

func protocolList() string {
	names := make([]string, len(Protocols))
	for i, p := range Protocols {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Marker is the point glyph drawn at each sample.
type Marker int

const (
	MarkerCircle Marker = iota // hollow ring
	MarkerPlus
	MarkerStar
)

// LineStyle is the dash pattern joining samples.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDashDot
)

// Style is the color / marker / line-style triple of one plotted series.
type Style struct {
	Color     color.RGBA
	Marker    Marker
	LineStyle LineStyle
}

var (
	colorGreen = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	colorBlue  = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	colorRed   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	colorBlack = color.RGBA{A: 0xff}
)

// DefaultStyle is used for a series that has no protocol.
var DefaultStyle = Style{Color: colorBlack, Marker: MarkerCircle, LineStyle: LineSolid}

var styles = map[Protocol]Style{
	TcpNewReno:   {Color: colorGreen, Marker: MarkerStar, LineStyle: LineDashDot},
	TcpDctcp:     {Color: colorBlue, Marker: MarkerPlus, LineStyle: LineDashed},
	TcpDctcpPlus: {Color: colorRed, Marker: MarkerCircle, LineStyle: LineSolid},
}

// StyleFor returns the protocol's display style, or DefaultStyle for unknown values.
func StyleFor(p Protocol) Style {
	if s, ok := styles[p]; ok {
		return s
	}
	return DefaultStyle
}
