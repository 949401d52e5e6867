package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lerobotlab/lerobotlab/internal/model"
	progressevents "github.com/lerobotlab/lerobotlab/internal/progress"
)

func TestUpdate_CountsOnlyConversionOutcomes(t *testing.T) {
	m := NewModel()
	m.state = StateConverting
	m.sel = &model.SelectionDocument{
		Datasets: []model.DatasetSelection{
			{RepoID: "a/one", SelectedVideos: []string{"x"}},
			{RepoID: "b/two", SelectedVideos: []string{"x"}},
		},
	}
	m.events = make(chan progressevents.Event, 8)

	// The event sequence of a run without a local input path: each dataset
	// produces a download-phase success event and later a conversion outcome.
	feed := []progressevents.Event{
		{Message: "Downloaded dataset: a/one", Level: progressevents.LevelSuccess},
		{Message: "Downloaded dataset: b/two", Level: progressevents.LevelSuccess},
		{Message: "converted a/one", Level: progressevents.LevelSuccess, Kind: progressevents.KindDatasetDone},
		{Message: "b/two: boom", Level: progressevents.LevelError, Kind: progressevents.KindDatasetDone},
	}

	var tm tea.Model = m
	for _, e := range feed {
		tm, _ = tm.Update(ProgressMsg{Event: e})
	}

	got := tm.(Model).processed
	if got != len(m.sel.Datasets) {
		t.Errorf("processed = %d datasets, want %d (download events must not advance the counter)",
			got, len(m.sel.Datasets))
	}
}

func TestUpdate_OutcomeEventsAppendToLog(t *testing.T) {
	m := NewModel()
	m.state = StateConverting
	m.events = make(chan progressevents.Event, 1)

	tm, _ := m.Update(ProgressMsg{Event: progressevents.Event{
		Message: "converted a/one",
		Level:   progressevents.LevelSuccess,
		Kind:    progressevents.KindDatasetDone,
	}})

	logs := tm.(Model).logs
	if len(logs) != 1 || logs[0].Message != "converted a/one" {
		t.Errorf("logs = %+v, want the outcome message appended", logs)
	}
}
