package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Accent colour; only its alpha varies.
	AccentR = 0
	AccentG = 102
	AccentB = 255

	// Page background the field is drawn over.
	BackgroundR = 245
	BackgroundG = 247
	BackgroundB = 250

	// FrameStep is the fixed time step, in seconds, of one display refresh.
	FrameStep = 1.0 / 60.0

	// FrameRingSize is how many recent frame timings the debug overlay averages.
	FrameRingSize = 120

	// SnapshotFrames is how many frames a headless snapshot runs by default.
	SnapshotFrames = 120

	RCFile = ".particlefieldrc"
)
