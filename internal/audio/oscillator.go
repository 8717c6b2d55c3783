package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType: форма волны генератора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Sweep: как частота идёт от начальной к конечной.
type Sweep int

const (
	SweepLinear Sweep = iota
	SweepExp
)

// oscillator: генератор с огибающей громкости и скольжением частоты.
type oscillator struct {
	wave     WaveType
	from, to float64
	sweep    Sweep
	vol      float64
	fade     bool // экспоненциальное затухание до 0.01
	rate     beep.SampleRate

	phase    float64
	position int
	duration int
	seed     uint32
}

func newOscillator(t tone, rate beep.SampleRate) *oscillator {
	to := t.To
	if to == 0 {
		to = t.From
	}
	return &oscillator{
		wave:     t.Wave,
		from:     t.From,
		to:       to,
		sweep:    t.Sweep,
		vol:      t.Vol,
		fade:     !t.LinearFade,
		rate:     rate,
		duration: rate.N(t.Dur),
		seed:     0x9e3779b9,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.duration)

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		val *= o.gain(progress)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq(progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func (o *oscillator) freq(progress float64) float64 {
	if o.sweep == SweepExp && o.from > 0 && o.to > 0 {
		return o.from * math.Pow(o.to/o.from, progress)
	}
	return o.from + (o.to-o.from)*progress
}

func (o *oscillator) gain(progress float64) float64 {
	if o.fade {
		return o.vol * math.Pow(0.01/o.vol, progress)
	}
	return o.vol * (1 - progress)
}

// tone: один звуковой фрагмент сигнала.
type tone struct {
	Wave       WaveType
	From, To   float64 // Гц; To == 0 без скольжения
	Sweep      Sweep
	Dur        time.Duration
	Delay      time.Duration
	Vol        float64
	LinearFade bool
}

// render собирает фрагменты в один поток.
func render(tones []tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		var s beep.Streamer = newOscillator(t, rate)
		if t.Delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(t.Delay)), s)
		}
		parts = append(parts, s)
	}
	return beep.Mix(parts...)
}
