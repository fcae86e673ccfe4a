package model

// Package model defines the data passed between the extractor backends, the
// download service and the terminal driver: metadata results with their
// entries, download tasks and task statuses. Nothing here outlives a run.
