// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Provides human-readable output for workouts and list entries

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/view"
)

// KindColor returns the color used for a workout kind.
func KindColor(k models.Kind) *color.Color {
	if k == models.Running {
		return color.New(color.FgGreen)
	}
	return color.New(color.FgYellow)
}

// FormatEntry formats a list entry on one line.
func FormatEntry(e view.Entry) string {
	title := KindColor(e.Kind).Sprint(e.Title)
	stats := fmt.Sprintf("%s km  ⏱ %s min  ⚡️ %s %s  %s %s %s",
		formatNumber(e.DistanceKm),
		formatNumber(e.DurationMin),
		e.Metric, e.MetricUnit,
		extraIcon(e.Kind), formatNumber(e.Extra), e.ExtraUnit)
	return fmt.Sprintf("%s %s  %s  %s",
		e.Icon,
		title,
		stats,
		color.New(color.Faint).Sprint(e.ID))
}

// FormatWorkoutLine formats a workout on one line.
func FormatWorkoutLine(w *models.Workout) string {
	if w == nil {
		return color.New(color.Faint).Sprint("(no workout)")
	}
	return FormatEntry(view.NewEntry(w))
}

// FormatWorkout formats a workout with all of its details.
func FormatWorkout(w *models.Workout) string {
	if w == nil {
		return color.New(color.Faint).Sprint("(no workout)")
	}
	e := view.NewEntry(w)
	faint := color.New(color.Faint)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", e.Icon, KindColor(w.Kind).Add(color.Bold).Sprint(w.Label))
	fmt.Fprintf(&b, "  %s %s\n", faint.Sprint("id:      "), w.ID)
	fmt.Fprintf(&b, "  %s %s\n", faint.Sprint("at:      "), w.Coords)
	fmt.Fprintf(&b, "  %s %s km\n", faint.Sprint("distance:"), formatNumber(w.DistanceKm))
	fmt.Fprintf(&b, "  %s %s min\n", faint.Sprint("duration:"), formatNumber(w.DurationMin))
	fmt.Fprintf(&b, "  %s %s %s\n", faint.Sprint(metricName(w.Kind)+":"), e.Metric, e.MetricUnit)
	fmt.Fprintf(&b, "  %s %s %s\n", faint.Sprint(extraName(w.Kind)+":"), formatNumber(e.Extra), e.ExtraUnit)
	fmt.Fprintf(&b, "  %s %d\n", faint.Sprint("views:   "), w.ViewCount)
	fmt.Fprintf(&b, "  %s %s", faint.Sprint("added:   "), FormatRelativeTime(w.CreatedAt))
	return b.String()
}

func metricName(k models.Kind) string {
	if k == models.Running {
		return "pace    "
	}
	return "speed   "
}

func extraName(k models.Kind) string {
	if k == models.Running {
		return "cadence "
	}
	return "climb   "
}

func extraIcon(k models.Kind) string {
	if k == models.Running {
		return "🦶🏼"
	}
	return "⛰"
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// FormatRelativeTime formats a time as relative to now.
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	// Handle future times (clock skew, bad data)
	if diff < 0 {
		return color.YellowString("in the future")
	}

	if diff < time.Minute {
		return "just now"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := int(diff.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
