package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// BirthInput identifies the chart subject, either by stored profile or by
// explicit birth data.
type BirthInput struct {
	Profile   string  `json:"profile,omitempty" jsonschema:"stored profile ID, ID prefix or name; when set the explicit birth fields are ignored"`
	Date      string  `json:"date,omitempty" jsonschema:"birth date as YYYY-MM-DD"`
	Time      string  `json:"time,omitempty" jsonschema:"local birth time as HH:MM or HH:MM:SS (default 00:00)"`
	UTCOffset float64 `json:"utc_offset,omitempty" jsonschema:"zone offset in hours east of Greenwich, e.g. -5 for EST"`
	Latitude  float64 `json:"latitude,omitempty" jsonschema:"birthplace latitude in degrees, north positive"`
	Longitude float64 `json:"longitude,omitempty" jsonschema:"birthplace longitude in degrees, east positive"`
	Elevation float64 `json:"elevation,omitempty" jsonschema:"birthplace elevation in metres"`
}

// ChartInput is the input schema for the natal_chart tool.
type ChartInput struct {
	Birth        BirthInput `json:"birth" jsonschema:"the chart subject"`
	HouseSystems []string   `json:"house_systems,omitempty" jsonschema:"house systems to compute: placidus, equal, whole_sign; the first is primary"`
	Node         string     `json:"node,omitempty" jsonschema:"lunar node formula: mean or true"`
}

// PositionInput is the input schema for the body_position tool.
type PositionInput struct {
	Body string `json:"body" jsonschema:"body name, e.g. sun, moon, mars, chiron"`
	At   string `json:"at,omitempty" jsonschema:"instant as RFC 3339 or YYYY-MM-DD (default now)"`
}

// ObserverInput is a location for topocentric transits.
type ObserverInput struct {
	Latitude  float64 `json:"latitude" jsonschema:"observer latitude in degrees"`
	Longitude float64 `json:"longitude" jsonschema:"observer longitude in degrees, east positive"`
	Elevation float64 `json:"elevation,omitempty" jsonschema:"observer elevation in metres"`
}

// TransitsInput is the input schema for the transits tool.
type TransitsInput struct {
	Birth    BirthInput     `json:"birth" jsonschema:"the natal chart subject"`
	At       string         `json:"at,omitempty" jsonschema:"snapshot instant as RFC 3339 or YYYY-MM-DD (default now)"`
	Observer *ObserverInput `json:"observer,omitempty" jsonschema:"current location; enables the topocentric Moon and current angles"`
}

// ProgressedInput is the input schema for the progressed_chart tool.
type ProgressedInput struct {
	Birth  BirthInput `json:"birth" jsonschema:"the natal chart subject"`
	Target string     `json:"target,omitempty" jsonschema:"date to progress to as RFC 3339 or YYYY-MM-DD (default now)"`
	Method string     `json:"method,omitempty" jsonschema:"solar_arc or naive_date (default from settings)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "natal_chart",
		Description: "Cast a natal chart: body positions, angles, houses, lunar phase and aspects",
	}, s.handleNatalChart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "body_position",
		Description: "Apparent geocentric ecliptic position of one body at an instant",
	}, s.handleBodyPosition)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transits",
		Description: "Current sky compared with a natal chart, tightest aspects first",
	}, s.handleTransits)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "progressed_chart",
		Description: "Secondary progression of a natal chart to a target date",
	}, s.handleProgressed)
}

// handleNatalChart handles the natal_chart tool invocation.
func (s *Server) handleNatalChart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChartInput,
) (*mcp.CallToolResult, ChartOutput, error) {
	req, err := s.resolveBirth(ctx, input.Birth)
	if err != nil {
		return nil, ChartOutput{}, err
	}

	for _, name := range input.HouseSystems {
		h, err := domain.ParseHouseSystem(name)
		if err != nil {
			return nil, ChartOutput{}, err
		}
		req.HouseSystems = append(req.HouseSystems, h)
	}
	if input.Node != "" {
		mode := domain.NodeMode(strings.ToLower(input.Node))
		if !mode.IsValid() {
			return nil, ChartOutput{}, fmt.Errorf("%w: unknown node mode %q", domain.ErrInvalidInput, input.Node)
		}
		req.NodeMode = mode
	}

	chart, err := s.ports.Chart.Natal(ctx, req)
	if err != nil {
		return nil, ChartOutput{}, err
	}
	return nil, toChart(chart), nil
}

// handleBodyPosition handles the body_position tool invocation.
func (s *Server) handleBodyPosition(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PositionInput,
) (*mcp.CallToolResult, PositionOutput, error) {
	body, err := domain.ParseBody(input.Body)
	if err != nil {
		return nil, PositionOutput{}, err
	}
	at, err := s.parseInstant(input.At)
	if err != nil {
		return nil, PositionOutput{}, err
	}

	pos, err := s.ports.Chart.Position(ctx, body, at)
	if err != nil {
		return nil, PositionOutput{}, err
	}
	return nil, toPosition(*pos), nil
}

// handleTransits handles the transits tool invocation.
func (s *Server) handleTransits(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransitsInput,
) (*mcp.CallToolResult, TransitsOutput, error) {
	req, err := s.resolveBirth(ctx, input.Birth)
	if err != nil {
		return nil, TransitsOutput{}, err
	}
	at, err := s.parseInstant(input.At)
	if err != nil {
		return nil, TransitsOutput{}, err
	}

	natal, err := s.ports.Chart.Natal(ctx, req)
	if err != nil {
		return nil, TransitsOutput{}, err
	}

	opts := domain.TransitOptions{Now: &at}
	if input.Observer != nil {
		opts.Observer = &domain.Location{
			Latitude:  input.Observer.Latitude,
			Longitude: input.Observer.Longitude,
			Elevation: input.Observer.Elevation,
		}
	}

	snap, err := s.ports.Chart.Transits(ctx, natal, opts)
	if err != nil {
		return nil, TransitsOutput{}, err
	}
	return nil, toTransits(snap), nil
}

// handleProgressed handles the progressed_chart tool invocation.
func (s *Server) handleProgressed(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProgressedInput,
) (*mcp.CallToolResult, ProgressedOutput, error) {
	req, err := s.resolveBirth(ctx, input.Birth)
	if err != nil {
		return nil, ProgressedOutput{}, err
	}
	target, err := s.parseInstant(input.Target)
	if err != nil {
		return nil, ProgressedOutput{}, err
	}

	var method domain.ProgressionMethod
	if input.Method != "" {
		method, err = domain.ParseProgressionMethod(input.Method)
		if err != nil {
			return nil, ProgressedOutput{}, err
		}
	}

	prog, err := s.ports.Chart.Progressed(ctx, req, target, method)
	if err != nil {
		return nil, ProgressedOutput{}, err
	}

	return nil, ProgressedOutput{
		Method:              prog.Method.String(),
		Target:              prog.Target.Format(time.RFC3339),
		ProgressedJulianDay: prog.ProgressedJulianDay,
		SolarArc:            prog.SolarArc,
		Chart:               toChart(&prog.Chart),
	}, nil
}

// resolveBirth turns a BirthInput into a chart request, looking the subject
// up by profile when one is named.
func (s *Server) resolveBirth(ctx context.Context, in BirthInput) (domain.ChartRequest, error) {
	if in.Profile != "" {
		if s.ports.Profile == nil {
			return domain.ChartRequest{}, ErrProfilesUnavailable
		}
		p, err := s.ports.Profile.Find(ctx, in.Profile)
		if err != nil {
			return domain.ChartRequest{}, fmt.Errorf("profile %q: %w", in.Profile, err)
		}
		return p.Request(nil, ""), nil
	}

	birth, err := domain.ParseCivilTime(in.Date, in.Time, in.UTCOffset)
	if err != nil {
		return domain.ChartRequest{}, err
	}
	loc := domain.Location{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Elevation: in.Elevation,
	}
	if err := loc.Validate(); err != nil {
		return domain.ChartRequest{}, err
	}
	return domain.ChartRequest{Birth: birth, Location: loc}, nil
}

// parseInstant accepts RFC 3339 or a bare UTC date; empty means now.
func (s *Server) parseInstant(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return s.now().UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: instant %q must be RFC 3339 or YYYY-MM-DD", domain.ErrInvalidInput, v)
}
