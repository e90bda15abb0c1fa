package domain

import "go.trai.ch/zerr"

var (
	// ErrNoResolutions is returned when a plan contains an empty resolution list.
	ErrNoResolutions = zerr.New("no resolutions specified")

	// ErrInvalidPointCount is returned when a resolution maps a domain to a non-positive point count.
	ErrInvalidPointCount = zerr.New("mesh point count must be a positive integer")

	// ErrMissingDomain is returned when a resolution omits a domain the backend requires.
	ErrMissingDomain = zerr.New("resolution is missing a required domain")

	// ErrInvalidTimeSpan is returned when a time span is not a finite, strictly increasing pair.
	ErrInvalidTimeSpan = zerr.New("time span start must be less than end")

	// ErrNoObservable is returned when a plan does not name an observable to collect.
	ErrNoObservable = zerr.New("no observable specified")

	// ErrObservableNotFound is returned when the backend reports the named observable as absent after solve.
	ErrObservableNotFound = zerr.New("observable not found in solution")

	// ErrInvalidWorkerCount is returned when a plan requests a negative worker count.
	ErrInvalidWorkerCount = zerr.New("worker count must not be negative")

	// ErrUnknownFailurePolicy is returned when a failure policy is neither 'continue' nor 'abort'.
	ErrUnknownFailurePolicy = zerr.New("unknown failure policy, expected 'continue' or 'abort'")

	// ErrUnknownBackend is returned when a plan names a backend that is not registered.
	ErrUnknownBackend = zerr.New("unknown backend")

	// ErrUnknownModel is returned when a backend does not recognize the requested model.
	ErrUnknownModel = zerr.New("unknown model")

	// ErrInvalidParameter is returned when a parameter value is NaN or infinite.
	ErrInvalidParameter = zerr.New("parameter value must be finite")

	// ErrRunFailed is returned when a single sweep run fails during build or solve.
	ErrRunFailed = zerr.New("run failed")

	// ErrSweepExecutionFailed is returned when a sweep produces no successful run.
	ErrSweepExecutionFailed = zerr.New("sweep execution failed")

	// ErrConfigReadFailed is returned when the sweep plan file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read sweep plan file")

	// ErrConfigParseFailed is returned when the sweep plan file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse sweep plan file")

	// ErrSolverCommandMissing is returned when the exec backend is selected without a solver command.
	ErrSolverCommandMissing = zerr.New("exec backend requires a solver command")

	// ErrSolverCommandFailed is returned when the external solver process fails.
	ErrSolverCommandFailed = zerr.New("solver command failed")

	// ErrSolverResponseInvalid is returned when the external solver output cannot be decoded.
	ErrSolverResponseInvalid = zerr.New("failed to decode solver response")

	// ErrStoreCreateFailed is returned when the run store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create run store directory")

	// ErrStoreReadFailed is returned when the run store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run store")

	// ErrStoreUnmarshalFailed is returned when the run store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal run store")

	// ErrStoreMarshalFailed is returned when the run store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal run store")

	// ErrStoreWriteFailed is returned when the run store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run store")

	// ErrWatchFailed is returned when the plan file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch plan file")
)
