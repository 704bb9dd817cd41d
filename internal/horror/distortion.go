package horror

// Params are the CRT post-processing knobs the renderer reads each frame.
type Params struct {
	StaticNoise float64
	Flicker     float64
	Tearing     float64
	Jitter      float64
	Barrel      float64
	SignalLoss  float64
	// Blackout darkens everything outside the player's line of sight.
	Blackout float64
}

// Distortion blends Params from a calm base toward a maximum as intensity
// rises.
type Distortion struct {
	NopEffect

	Base, Max Params
	// BlackoutFrom is the intensity at which blackout starts to creep in.
	BlackoutFrom float64

	current Params
}

// NewDistortion returns the effect with the shipped CRT tuning.
func NewDistortion() *Distortion {
	base := Params{StaticNoise: 0.02, Flicker: 0.01, Tearing: 0.001, Jitter: 0.001, Barrel: 0.04}
	return &Distortion{
		Base: base,
		Max: Params{
			StaticNoise: 0.08,
			Flicker:     0.05,
			Tearing:     0.007,
			Jitter:      0.006,
			Barrel:      0.12,
			SignalLoss:  0.08,
			Blackout:    0.85,
		},
		BlackoutFrom: 0.6,
		current:      base,
	}
}

// Current returns the parameters for this frame.
func (d *Distortion) Current() Params { return d.current }

func (d *Distortion) Update(s *System, intensity, dt float64) {
	t := clamp01(intensity)
	d.current = Params{
		StaticNoise: lerp(d.Base.StaticNoise, d.Max.StaticNoise, t),
		Flicker:     lerp(d.Base.Flicker, d.Max.Flicker, t),
		Tearing:     lerp(d.Base.Tearing, d.Max.Tearing, t),
		Jitter:      lerp(d.Base.Jitter, d.Max.Jitter, t),
		Barrel:      lerp(d.Base.Barrel, d.Max.Barrel, t),
		SignalLoss:  lerp(d.Base.SignalLoss, d.Max.SignalLoss, t),
		Blackout:    d.Base.Blackout,
	}
	if d.BlackoutFrom < 1 && t > d.BlackoutFrom {
		b := (t - d.BlackoutFrom) / (1 - d.BlackoutFrom)
		d.current.Blackout = lerp(d.Base.Blackout, d.Max.Blackout, b)
	}
}

func (d *Distortion) OnGameOver(s *System) {
	d.current = d.Base
}

// UITint drives the red wash over the HUD.
type UITint struct {
	NopEffect
	coverage float64
}

// Coverage is the tinted fraction of the HUD, 0..1.
func (u *UITint) Coverage() float64 { return u.coverage }

func (u *UITint) Update(s *System, intensity, dt float64) {
	u.coverage = clamp01(intensity)
}

func (u *UITint) OnGameOver(s *System) {
	u.coverage = 0
}
