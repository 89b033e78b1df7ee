// Package sla classifies compliance tickets against their due dates and
// aggregates them for reporting.
//
// Every function here is a pure transformation over a caller-supplied
// slice of tickets. Inputs are never mutated, and results never alias the
// input slice, so callers may share one snapshot across goroutines.
//
// Two notions of "now" coexist. Bucketing, listings, reminders and the
// heatmap compare UTC calendar days. Summarize compares exact timestamps.
package sla
