package contracts

// ClientOptions defines the configuration options for the MIDI device.
type ClientOptions struct {
	Logger     Logger    // Logger for logging events and errors.
	LogLevel   LogLevel  // Level of logging to use.
	ClientName string    // Client identity announced to the MIDI subsystem.
	Inputs     []string  // Input descriptors to connect once the device is up.
	Outputs    []string  // Output descriptors to connect once the device is up.
	Transport  Transport // Explicit backend; nil selects one by platform.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI device.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI device.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithClientName sets the client identity announced to the MIDI subsystem.
func WithClientName(name string) Option {
	return func(opts *ClientOptions) {
		opts.ClientName = name
	}
}

// WithInputs sets the input descriptors connected at startup.
func WithInputs(inputs ...string) Option {
	return func(opts *ClientOptions) {
		opts.Inputs = append(opts.Inputs, inputs...)
	}
}

// WithOutputs sets the output descriptors connected at startup.
func WithOutputs(outputs ...string) Option {
	return func(opts *ClientOptions) {
		opts.Outputs = append(opts.Outputs, outputs...)
	}
}

// WithTransport pins the device to an explicit transport backend instead
// of the platform default.
func WithTransport(t Transport) Option {
	return func(opts *ClientOptions) {
		opts.Transport = t
	}
}
