package profile

// Stopper stops a running profile.
type Stopper interface{ Stop() }

// Profiler configures one profiling run.
type Profiler struct {
	// Mode is one of [Modes]. An empty mode disables profiling.
	Mode string
	// Dir is the output directory. Empty means the working directory.
	Dir string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Option configures a [Profiler].
type Option func(*Profiler)

// WithMode sets the profiling mode.
func WithMode(mode string) Option { return func(p *Profiler) { p.Mode = mode } }

// WithDir sets the output directory.
func WithDir(dir string) Option { return func(p *Profiler) { p.Dir = dir } }

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option { return func(p *Profiler) { p.Quiet = quiet } }

// New returns a Profiler configured by opts.
func New(opts ...Option) Profiler {
	var p Profiler
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Start starts profiling and returns the handle that stops it. It returns a
// no-op handle when the mode is empty or unknown, or when built without the
// pprof tag. Start and Stop are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return nop{}
	}

	return start(p)
}

type nop struct{}

func (nop) Stop() {}
