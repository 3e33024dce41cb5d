package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for zenith resources.
	uriScheme = "zenith://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profiles",
		Name:        "profiles",
		Description: "Stored birth profiles",
		MIMEType:    "application/json",
	}, s.handleProfilesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "profiles/{profileId}/chart",
		Name:        "profile-chart",
		Description: "Natal chart of a stored birth profile, recomputed on every read",
		MIMEType:    "application/json",
	}, s.handleProfileChartResource)
}

// profileInfo is the listing shape of a stored profile.
type profileInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Birth     string  `json:"birth"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Place     string  `json:"place,omitempty"`
	URI       string  `json:"uri"`
}

// handleProfilesResource lists stored profiles.
func (s *Server) handleProfilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Profile == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	profiles, err := s.ports.Profile.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	infos := make([]profileInfo, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		infos[i] = profileInfo{
			ID:        p.ID,
			Name:      p.Name,
			Birth:     p.Birth.String(),
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
			Place:     p.PlaceName,
			URI:       uriScheme + "profiles/" + p.ID + "/chart",
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling profiles: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleProfileChartResource casts the chart of one stored profile.
func (s *Server) handleProfileChartResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Profile == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract profileId from URI: zenith://profiles/{profileId}/chart
	profileID := extractProfileID(req.Params.URI)
	if profileID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	chart, err := s.ports.Chart.NatalForProfile(ctx, profileID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("casting profile chart: %w", err)
	}

	data, err := json.MarshalIndent(toChart(chart), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling chart: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractProfileID extracts the profile ID from a URI like zenith://profiles/{profileId}/chart.
func extractProfileID(uri string) string {
	const prefix = uriScheme + "profiles/"
	const suffix = "/chart"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
