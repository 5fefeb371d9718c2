package core

// FramePacer keeps the loop close to the target frame rate and tracks the
// published FPS and the delta between frame starts.
type FramePacer struct {
	timer                 Timer
	frequency             float64
	targetSecondsPerFrame float64

	frameStart    uint64
	previousStart uint64
	deltaTicks    uint64
	started       bool

	frames     uint32
	lastSample uint64
	fps        uint32
}

// NewFramePacer converts the target rate once. targetFPS must be positive;
// the configuration layer rejects anything else before the pacer exists.
func NewFramePacer(timer Timer, targetFPS float64) *FramePacer {
	return &FramePacer{
		timer:                 timer,
		frequency:             float64(timer.Frequency()),
		targetSecondsPerFrame: 1.0 / targetFPS,
	}
}

// Start is called once at loop entry.
func (p *FramePacer) Start() {
	now := p.timer.Counter()
	p.frameStart = now
	p.previousStart = now
	p.lastSample = now
	p.deltaTicks = 0
	p.frames = 0
	p.fps = 0
	p.started = true
}

// BeginFrame stamps the start of a frame and updates the delta.
func (p *FramePacer) BeginFrame() {
	if !p.started {
		p.Start()
	}
	now := p.timer.Counter()
	p.deltaTicks = now - p.previousStart
	p.previousStart = now
	p.frameStart = now
}

// EndFrame sleeps away what is left of the frame budget and updates the FPS
// sample. An overrun frame does not sleep, and the next frame is paced on
// its own. Returns the requested sleep in milliseconds.
func (p *FramePacer) EndFrame() uint32 {
	end := p.timer.Counter()
	elapsed := float64(end-p.frameStart) / p.frequency
	sleepFor := p.targetSecondsPerFrame - elapsed

	var sleepMS uint32
	if sleepFor > 0 {
		// Truncated to whole milliseconds.
		sleepMS = uint32(sleepFor * 1000.0)
		if sleepMS > 0 {
			p.timer.Delay(sleepMS)
		}
	}

	p.frames++
	if float64(end-p.lastSample)/p.frequency >= 1.0 {
		p.fps = p.frames
		p.frames = 0
		p.lastSample = end
	}
	return sleepMS
}

// FPS is the number of frames completed during the previous full second.
func (p *FramePacer) FPS() uint32 {
	return p.fps
}

// DeltaTicks is the raw counter delta between the last two frame starts.
func (p *FramePacer) DeltaTicks() uint64 {
	return p.deltaTicks
}

func (p *FramePacer) DeltaSeconds() float64 {
	return float64(p.deltaTicks) / p.frequency
}

func (p *FramePacer) Frequency() uint64 {
	return uint64(p.frequency)
}

func (p *FramePacer) TargetSecondsPerFrame() float64 {
	return p.targetSecondsPerFrame
}

// pendingFrames is the internal counter, exposed to tests in this package.
func (p *FramePacer) pendingFrames() uint32 {
	return p.frames
}
