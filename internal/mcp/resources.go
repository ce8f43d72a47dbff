// ABOUTME: MCP resource definitions
// ABOUTME: Provides read-only JSON and GeoJSON views of the workouts

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/workouts/internal/geojson"
)

const (
	allURI = "workouts://all"
	mapURI = "workouts://map"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        allURI,
		Description: "All workouts in the current sort order",
		URI:         allURI,
		MIMEType:    "application/json",
	}, s.handleAllResource)

	s.mcp.AddResource(&mcp.Resource{
		Name:        mapURI,
		Description: "All workouts as a GeoJSON FeatureCollection",
		URI:         mapURI,
		MIMEType:    "application/geo+json",
	}, s.handleMapResource)
}

func (s *Server) handleAllResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	output := s.listOutput()
	s.mu.Unlock()

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      allURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		},
	}, nil
}

func (s *Server) handleMapResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	fc := geojson.ToPointsFeatureCollection(s.app.Workouts())
	s.mu.Unlock()

	data, err := fc.ToJSONIndent()
	if err != nil {
		return nil, fmt.Errorf("failed to encode geojson: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      mapURI,
				MIMEType: "application/geo+json",
				Text:     string(data),
			},
		},
	}, nil
}
