// Package stats keeps tallies of validation outcomes and tool calls, for the
// current process and across restarts.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ToolStats represents statistics for a single tool
type ToolStats struct {
	Name                 string        `json:"name"`
	CallCount            int           `json:"call_count"`
	FailureCount         int           `json:"failure_count"`
	TotalExecutionTime   time.Duration `json:"total_execution_time"`
	AverageExecutionTime time.Duration `json:"average_execution_time"`
	LastUsed             time.Time     `json:"last_used"`
}

// OutcomeStats counts validation results by type
type OutcomeStats struct {
	Total   int            `json:"total"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	ByType  map[string]int `json:"by_type"`
}

// SessionStats represents statistics for the current process
type SessionStats struct {
	StartTime time.Time             `json:"start_time"`
	Tools     map[string]*ToolStats `json:"tools"`
	Outcomes  OutcomeStats          `json:"outcomes"`
}

// PersistentStats represents statistics persisted across all sessions
type PersistentStats struct {
	FirstRecorded time.Time             `json:"first_recorded"`
	LastUpdated   time.Time             `json:"last_updated"`
	Tools         map[string]*ToolStats `json:"tools"`
	Outcomes      OutcomeStats          `json:"outcomes"`
}

// Tracker records statistics. An empty file path keeps everything in memory.
type Tracker struct {
	sessionStats    *SessionStats
	persistentStats *PersistentStats
	statsFilePath   string
	logger          *zap.Logger
	mutex           sync.RWMutex
}

// NewTracker creates a Tracker, loading persisted stats from statsFilePath if
// the file exists.
func NewTracker(statsFilePath string, logger *zap.Logger) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now()
	tracker := &Tracker{
		sessionStats: &SessionStats{
			StartTime: now,
			Tools:     make(map[string]*ToolStats),
			Outcomes:  newOutcomeStats(),
		},
		persistentStats: &PersistentStats{
			FirstRecorded: now,
			LastUpdated:   now,
			Tools:         make(map[string]*ToolStats),
			Outcomes:      newOutcomeStats(),
		},
		statsFilePath: statsFilePath,
		logger:        logger.Named("stats"),
	}

	if statsFilePath == "" {
		return tracker, nil
	}

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(statsFilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for stats file: %w", err)
	}

	// Load persistent stats if they exist
	data, err := os.ReadFile(statsFilePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, tracker.persistentStats); err != nil {
			return nil, fmt.Errorf("failed to parse stats file: %w", err)
		}
		if tracker.persistentStats.Tools == nil {
			tracker.persistentStats.Tools = make(map[string]*ToolStats)
		}
		if tracker.persistentStats.Outcomes.ByType == nil {
			tracker.persistentStats.Outcomes.ByType = make(map[string]int)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	return tracker, nil
}

func newOutcomeStats() OutcomeStats {
	return OutcomeStats{ByType: make(map[string]int)}
}

// RecordOutcome counts one validation result
func (t *Tracker) RecordOutcome(resultType string, valid bool) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for _, o := range []*OutcomeStats{&t.sessionStats.Outcomes, &t.persistentStats.Outcomes} {
		o.Total++
		if valid {
			o.Valid++
		} else {
			o.Invalid++
		}
		o.ByType[resultType]++
	}
	t.persistentStats.LastUpdated = time.Now()

	return t.savePersistentStats()
}

// RecordToolUsage records one call of a tool
func (t *Tracker) RecordToolUsage(toolName string, executionTime time.Duration, failed bool) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := time.Now()
	for _, tools := range []map[string]*ToolStats{t.sessionStats.Tools, t.persistentStats.Tools} {
		tool, ok := tools[toolName]
		if !ok {
			tool = &ToolStats{Name: toolName}
			tools[toolName] = tool
		}
		tool.CallCount++
		if failed {
			tool.FailureCount++
		}
		tool.TotalExecutionTime += executionTime
		tool.AverageExecutionTime = tool.TotalExecutionTime / time.Duration(tool.CallCount)
		tool.LastUsed = now
	}
	t.persistentStats.LastUpdated = now

	return t.savePersistentStats()
}

// GetSessionStats returns a copy of the current session statistics
func (t *Tracker) GetSessionStats() *SessionStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &SessionStats{
		StartTime: t.sessionStats.StartTime,
		Tools:     copyTools(t.sessionStats.Tools),
		Outcomes:  copyOutcomes(t.sessionStats.Outcomes),
	}
}

// GetPersistentStats returns a copy of the all-time statistics
func (t *Tracker) GetPersistentStats() *PersistentStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return &PersistentStats{
		FirstRecorded: t.persistentStats.FirstRecorded,
		LastUpdated:   t.persistentStats.LastUpdated,
		Tools:         copyTools(t.persistentStats.Tools),
		Outcomes:      copyOutcomes(t.persistentStats.Outcomes),
	}
}

// ResetSessionStats resets the session statistics
func (t *Tracker) ResetSessionStats() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionStats = &SessionStats{
		StartTime: time.Now(),
		Tools:     make(map[string]*ToolStats),
		Outcomes:  newOutcomeStats(),
	}

	t.logger.Info("Session statistics reset")
}

func copyTools(in map[string]*ToolStats) map[string]*ToolStats {
	out := make(map[string]*ToolStats, len(in))
	for name, tool := range in {
		toolCopy := *tool
		out[name] = &toolCopy
	}
	return out
}

func copyOutcomes(in OutcomeStats) OutcomeStats {
	out := in
	out.ByType = make(map[string]int, len(in.ByType))
	for k, v := range in.ByType {
		out.ByType[k] = v
	}
	return out
}

// savePersistentStats saves persistent stats to file. Callers hold the lock.
func (t *Tracker) savePersistentStats() error {
	if t.statsFilePath == "" {
		return nil
	}

	data, err := json.MarshalIndent(t.persistentStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(t.statsFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

// FormatStats formats statistics as a string
func FormatStats(sessionStats *SessionStats, persistentStats *PersistentStats) string {
	var b strings.Builder
	b.WriteString("Validation Statistics\n\n")

	b.WriteString("Current Session Statistics:\n")
	fmt.Fprintf(&b, "Session started: %s\n", sessionStats.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Session duration: %s\n\n", time.Since(sessionStats.StartTime).Round(time.Second))
	writeOutcomes(&b, sessionStats.Outcomes)
	writeTools(&b, sessionStats.Tools, "No tools used in this session.\n")

	b.WriteString("\nAll-Time Statistics:\n")
	fmt.Fprintf(&b, "First recorded: %s\n", persistentStats.FirstRecorded.Format(time.RFC3339))
	fmt.Fprintf(&b, "Last updated: %s\n\n", persistentStats.LastUpdated.Format(time.RFC3339))
	writeOutcomes(&b, persistentStats.Outcomes)
	writeTools(&b, persistentStats.Tools, "No tools used across all sessions.\n")

	return b.String()
}

func writeOutcomes(b *strings.Builder, o OutcomeStats) {
	fmt.Fprintf(b, "Sentences checked: %d (valid: %d, invalid: %d)\n", o.Total, o.Valid, o.Invalid)

	types := make([]string, 0, len(o.ByType))
	for name := range o.ByType {
		types = append(types, name)
	}
	sort.Strings(types)
	for _, name := range types {
		fmt.Fprintf(b, "  %-22s %5d\n", name, o.ByType[name])
	}
	b.WriteString("\n")
}

func writeTools(b *strings.Builder, tools map[string]*ToolStats, empty string) {
	if len(tools) == 0 {
		b.WriteString(empty)
		return
	}

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("Tool                  | Calls | Failures | Avg Time  | Total Time\n")
	b.WriteString("----------------------|-------|----------|-----------|-----------\n")
	for _, name := range names {
		tool := tools[name]
		fmt.Fprintf(b, "%-22s| %5d | %8d | %9s | %10s\n",
			tool.Name,
			tool.CallCount,
			tool.FailureCount,
			tool.AverageExecutionTime.Round(time.Millisecond).String(),
			tool.TotalExecutionTime.Round(time.Millisecond).String())
	}
}
