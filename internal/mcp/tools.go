// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Drives the same create, edit, delete, list, and view flows as the CLI

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/session"
	"github.com/harper/workouts/internal/view"
)

func (s *Server) registerTools() {
	s.registerAddWorkoutTool()
	s.registerEditWorkoutTool()
	s.registerDeleteWorkoutTool()
	s.registerListWorkoutsTool()
	s.registerViewWorkoutTool()
}

// WorkoutOutput is the JSON shape of one workout.
type WorkoutOutput struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Label          string    `json:"label"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceKm     float64   `json:"distance_km"`
	DurationMin    float64   `json:"duration_min"`
	Pace           float64   `json:"pace_min_per_km,omitempty"`
	Speed          float64   `json:"speed_km_per_h,omitempty"`
	Cadence        float64   `json:"cadence,omitempty"`
	ElevationGainM float64   `json:"elevation_gain_m,omitempty"`
	Views          int       `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
}

func toOutput(w *models.Workout) WorkoutOutput {
	return WorkoutOutput{
		ID:             w.ID,
		Type:           string(w.Kind),
		Label:          w.Label,
		Latitude:       w.Coords.Lat,
		Longitude:      w.Coords.Lng,
		DistanceKm:     w.DistanceKm,
		DurationMin:    w.DurationMin,
		Pace:           w.Pace,
		Speed:          w.Speed,
		Cadence:        w.Cadence,
		ElevationGainM: w.ElevationGainM,
		Views:          w.ViewCount,
		CreatedAt:      w.CreatedAt,
	}
}

func textResult(v any) *mcp.CallToolResult {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AddWorkoutInput defines input for add_workout tool.
type AddWorkoutInput struct {
	Type        string   `json:"type"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	DistanceKm  float64  `json:"distance_km"`
	DurationMin float64  `json:"duration_min"`
	Cadence     *float64 `json:"cadence,omitempty"`
	Elevation   *float64 `json:"elevation_gain_m,omitempty"`
}

func (s *Server) registerAddWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "add_workout",
		Description: "Record a running or cycling workout at a location. Running needs cadence, cycling needs elevation gain.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{string(models.Running), string(models.Cycling)},
					"description": "Workout type",
				},
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Latitude coordinate (-90 to 90)",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Longitude coordinate (-180 to 180)",
				},
				"distance_km": map[string]interface{}{
					"type":        "number",
					"description": "Distance in kilometers",
				},
				"duration_min": map[string]interface{}{
					"type":        "number",
					"description": "Duration in minutes",
				},
				"cadence": map[string]interface{}{
					"type":        "number",
					"description": "Steps per minute (running only)",
				},
				"elevation_gain_m": map[string]interface{}{
					"type":        "number",
					"description": "Elevation gain in meters (cycling only, non-negative)",
				},
			},
			"required": []string{"type", "latitude", "longitude", "distance_km", "duration_min"},
		},
	}, s.handleAddWorkout)
}

func (s *Server) handleAddWorkout(_ context.Context, req *mcp.CallToolRequest, input AddWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coord := models.Coordinate{Lat: input.Latitude, Lng: input.Longitude}
	if err := s.app.Dispatch(view.CreateIntent{Coord: coord}); err != nil {
		return nil, WorkoutOutput{}, err
	}

	raw := session.RawForm{
		Type:     input.Type,
		Distance: formatInput(input.DistanceKm),
		Duration: formatInput(input.DurationMin),
	}
	if input.Cadence != nil {
		raw.Cadence = formatInput(*input.Cadence)
	}
	if input.Elevation != nil {
		raw.Elevation = formatInput(*input.Elevation)
	}

	w, err := s.submit(raw)
	if err != nil {
		return nil, WorkoutOutput{}, err
	}

	output := toOutput(w)
	return textResult(output), output, nil
}

// submit applies the open form, closing it again if the input is rejected.
func (s *Server) submit(raw session.RawForm) (*models.Workout, error) {
	w, err := s.app.SubmitForm(raw)
	if err != nil {
		_ = s.app.Dispatch(view.CancelIntent{})
		return nil, err
	}
	return w, nil
}

// EditWorkoutInput defines input for edit_workout tool. Omitted fields keep
// their current values.
type EditWorkoutInput struct {
	ID          string   `json:"id"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	DurationMin *float64 `json:"duration_min,omitempty"`
	Cadence     *float64 `json:"cadence,omitempty"`
	Elevation   *float64 `json:"elevation_gain_m,omitempty"`
}

func (s *Server) registerEditWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "edit_workout",
		Description: "Change the numbers of an existing workout. The workout type and location cannot be changed.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id",
				},
				"distance_km": map[string]interface{}{
					"type":        "number",
					"description": "New distance in kilometers",
				},
				"duration_min": map[string]interface{}{
					"type":        "number",
					"description": "New duration in minutes",
				},
				"cadence": map[string]interface{}{
					"type":        "number",
					"description": "New cadence (running only)",
				},
				"elevation_gain_m": map[string]interface{}{
					"type":        "number",
					"description": "New elevation gain (cycling only)",
				},
			},
			"required": []string{"id"},
		},
	}, s.handleEditWorkout)
}

func (s *Server) handleEditWorkout(_ context.Context, req *mcp.CallToolRequest, input EditWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.app.Edit(input.ID)
	if err != nil {
		return nil, WorkoutOutput{}, err
	}
	if input.DistanceKm != nil {
		raw.Distance = formatInput(*input.DistanceKm)
	}
	if input.DurationMin != nil {
		raw.Duration = formatInput(*input.DurationMin)
	}
	if input.Cadence != nil {
		raw.Cadence = formatInput(*input.Cadence)
	}
	if input.Elevation != nil {
		raw.Elevation = formatInput(*input.Elevation)
	}

	w, err := s.submit(raw)
	if err != nil {
		return nil, WorkoutOutput{}, err
	}

	output := toOutput(w)
	return textResult(output), output, nil
}

// DeleteWorkoutInput defines input for delete_workout tool.
type DeleteWorkoutInput struct {
	ID      string `json:"id,omitempty"`
	All     bool   `json:"all,omitempty"`
	Confirm bool   `json:"confirm"`
}

// DeleteWorkoutOutput defines output for delete_workout tool.
type DeleteWorkoutOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
}

func (s *Server) registerDeleteWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete one workout by id, or every workout with all=true. This cannot be undone, so confirm must be true.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id to delete",
				},
				"all": map[string]interface{}{
					"type":        "boolean",
					"description": "Delete every workout instead of one",
				},
				"confirm": map[string]interface{}{
					"type":        "boolean",
					"description": "Must be true to go ahead with the delete",
				},
			},
			"required": []string{"confirm"},
		},
	}, s.handleDeleteWorkout)
}

func (s *Server) handleDeleteWorkout(_ context.Context, req *mcp.CallToolRequest, input DeleteWorkoutInput) (*mcp.CallToolResult, DeleteWorkoutOutput, error) {
	if !input.Confirm {
		return nil, DeleteWorkoutOutput{}, fmt.Errorf("delete not confirmed: set confirm to true")
	}
	if !input.All && input.ID == "" {
		return nil, DeleteWorkoutOutput{}, fmt.Errorf("id is required unless all is true")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var intent view.Intent = view.DeleteIntent{ID: input.ID}
	message := fmt.Sprintf("Deleted workout %s", input.ID)
	if input.All {
		intent = view.DeleteAllIntent{}
		message = "Deleted all workouts"
	}

	if err := s.app.Dispatch(intent); err != nil {
		return nil, DeleteWorkoutOutput{}, err
	}
	if err := s.app.Confirm(true); err != nil {
		return nil, DeleteWorkoutOutput{}, err
	}

	output := DeleteWorkoutOutput{
		Success:   true,
		Message:   message,
		Remaining: len(s.app.Workouts()),
	}
	return textResult(output), output, nil
}

// ListWorkoutsInput defines input for list_workouts tool.
type ListWorkoutsInput struct {
	Sort string `json:"sort,omitempty"`
}

// ListWorkoutsOutput defines output for list_workouts tool.
type ListWorkoutsOutput struct {
	Workouts []WorkoutOutput `json:"workouts"`
	Sort     string          `json:"sort,omitempty"`
	Count    int             `json:"count"`
}

func (s *Server) registerListWorkoutsTool() {
	criteria := make([]string, len(collection.Criteria))
	for i, c := range collection.Criteria {
		criteria[i] = string(c)
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List all workouts, optionally sorted. The sort order sticks for later lists.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sort": map[string]interface{}{
					"type":        "string",
					"enum":        criteria,
					"description": "Sort order",
				},
			},
		},
	}, s.handleListWorkouts)
}

func (s *Server) handleListWorkouts(_ context.Context, req *mcp.CallToolRequest, input ListWorkoutsInput) (*mcp.CallToolResult, ListWorkoutsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Sort != "" {
		c, err := collection.ParseCriterion(input.Sort)
		if err != nil {
			return nil, ListWorkoutsOutput{}, err
		}
		if err := s.app.Dispatch(view.SortIntent{Criterion: c}); err != nil {
			return nil, ListWorkoutsOutput{}, err
		}
	}

	output := s.listOutput()
	output.Sort = input.Sort
	return textResult(output), output, nil
}

func (s *Server) listOutput() ListWorkoutsOutput {
	ws := s.app.Workouts()
	outputs := make([]WorkoutOutput, len(ws))
	for i, w := range ws {
		outputs[i] = toOutput(w)
	}
	return ListWorkoutsOutput{
		Workouts: outputs,
		Count:    len(outputs),
	}
}

// ViewWorkoutInput defines input for view_workout tool.
type ViewWorkoutInput struct {
	ID string `json:"id"`
}

func (s *Server) registerViewWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "view_workout",
		Description: "Show one workout and count the view.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id",
				},
			},
			"required": []string{"id"},
		},
	}, s.handleViewWorkout)
}

func (s *Server) handleViewWorkout(_ context.Context, req *mcp.CallToolRequest, input ViewWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.app.View(input.ID)
	if err != nil {
		return nil, WorkoutOutput{}, fmt.Errorf("workout '%s' not found: %w", input.ID, err)
	}

	output := toOutput(w)
	return textResult(output), output, nil
}
