// Package model defines the core data structures used throughout lerobotlab.
//
// # Selection documents
//
// A SelectionDocument is the user-authored manifest driving both the download
// and convert commands. It is loaded once and never mutated:
//
//	sel, err := model.LoadSelection("selection.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ds := range sel.Datasets {
//	    fmt.Println(ds.RepoID, ds.SelectedVideos)
//	}
//
// Loading validates the document's structural invariants: a non-empty
// datasets array where every entry has a repo_id and at least one selected
// video stream. Violations are reported as ErrMalformedSelection and abort
// the whole run, since they indicate a corrupt document.
//
// # Conversion results
//
// ConversionResult is the contract between the orchestrator and the format
// converters. Per-dataset failures travel as data (StatusError), not as Go
// errors, so one bad dataset never aborts the rest of the run.
package model
