package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// ScrollScale converts scroll distance in pixels to curve phase offset.
	ScrollScale = 1.0 / 10000
	// WheelStep is the scroll distance of one mouse wheel notch.
	WheelStep = 40

	// Noise overlay defaults
	NoiseFrequency = 2.78
	NoiseOctaves   = 6
	// NoiseDownscale renders the noise texture at 1/N resolution before
	// stretching it over the canvas.
	NoiseDownscale = 2
	NoiseOpacity   = 0.35

	// Props listing layout
	PropsRight    = 10
	PropsTop      = 100
	PropsLine     = 10
	PropsFontSize = 12

	// Tone parameters
	ToneSampleRate = 44100
	ToneBaseHz     = 55
	ToneGain       = 0.25
)

// DefaultHarmonics are the odd harmonics of a square wave up to the seventh.
var DefaultHarmonics = []int{1, 3, 5, 7}
