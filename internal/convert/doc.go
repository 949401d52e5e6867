// Package convert turns downloaded LeRobot datasets into DROID or
// V-JEPA2-AC artifact sets.
//
// # Format registry
//
// The set of target formats is closed and known at compile time:
//
//	convert.SupportedFormats()              // ["droid", "vjepa2-ac"]
//	format, err := convert.ValidateFormat("DROID") // "droid"
//	conv, err := convert.NewConverter(format, verbose)
//
// # Orchestration
//
// ConvertDatasets drives a whole run from a selection document:
//
//	summary, err := convert.ConvertDatasets(ctx, sel, convert.Options{
//	    OutputPath: "/out/droid",
//	    InputPath:  "/data/lerobot", // optional; downloads when empty
//	    Format:     "droid",
//	    OnProgress: progress.Printer(os.Stdout, verbose),
//	})
//
// Datasets are processed sequentially in document order. A dataset whose
// converter reports an error status is counted in Summary.DatasetsFailed and
// the loop continues; structural failures abort the run wrapped in a single
// *RunError so callers can tell the two apart.
//
// # Time estimation
//
// EstimateConversionTime gives a rough, deterministic duration estimate from
// the selection metadata's frame count.
package convert
