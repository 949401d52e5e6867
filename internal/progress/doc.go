// Package progress defines the progress event plumbing shared by the
// download manager and the conversion orchestrator.
//
// Both components report through a single callback type:
//
//	mgr := download.NewManager(settings, progress.Printer(os.Stdout, verbose))
//
// Events carry a Level (Info, Verbose, Warning, Error, Success) so front
// ends (the plain CLI and the Bubble Tea TUI) can filter and style them
// without the producers knowing who is listening.
package progress
