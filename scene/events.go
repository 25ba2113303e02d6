package scene

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/collinear/geom"
	"github.com/pkg/errors"
)

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	ResetRequest
)

var eventNames = map[string]EventKind{
	"down":  PointerDown,
	"move":  PointerMove,
	"up":    PointerUp,
	"leave": PointerLeave,
	"reset": ResetRequest,
}

func (k EventKind) String() string {
	for name, kind := range eventNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// A pointer event in canvas coordinates. Point is only meaningful for down and
// move.
type Event struct {
	Kind  EventKind
	Point geom.Point
}

// ReadEvents parses an event script: one event per line, as "down x y",
// "move x y", "up", "leave" or "reset". Blank lines and lines starting with #
// are skipped.
func ReadEvents(in io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		event, err := ParseEvent(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading events")
	}
	return events, nil
}

func ParseEvent(line string) (Event, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Event{}, errors.New("empty event")
	}
	kind, ok := eventNames[strings.ToLower(parts[0])]
	if !ok {
		return Event{}, errors.Errorf("unknown event %q", parts[0])
	}

	event := Event{Kind: kind}
	wantsPoint := kind == PointerDown || kind == PointerMove
	if !wantsPoint {
		if len(parts) != 1 {
			return Event{}, errors.Errorf("%s takes no coordinates", kind)
		}
		return event, nil
	}

	if len(parts) != 3 {
		return Event{}, errors.Errorf("%s needs x and y", kind)
	}
	x, err := parseCoordinate("x", parts[1])
	if err != nil {
		return Event{}, err
	}
	y, err := parseCoordinate("y", parts[2])
	if err != nil {
		return Event{}, err
	}
	event.Point = geom.Point{X: x, Y: y}
	return event, nil
}

// ParseFloat accepts NaN and Inf, which are not positions on any canvas.
func parseCoordinate(axis, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", axis, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("invalid %s value %q: not finite", axis, s)
	}
	return v, nil
}
