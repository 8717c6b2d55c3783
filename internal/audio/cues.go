package audio

import "time"

// Cue: звуковой сигнал игры.
type Cue int

const (
	CueEnemyDeath Cue = iota
	CuePlayerHit
	CuePlayerDeath
	CueShoot
	CueLightning
	CueReplicate
	CueCoin
	CueLevelUp
	CueVictory
	CueNuke
	CueDash
)

const ms = time.Millisecond

var cueTones = map[Cue][]tone{
	CueEnemyDeath: {{Wave: WaveSquare, From: 150, Dur: 100 * ms, Vol: 0.05}},
	CuePlayerHit:  {{Wave: WaveSaw, From: 150, To: 50, Sweep: SweepExp, Dur: 200 * ms, Vol: 0.2}},
	CuePlayerDeath: {
		{Wave: WaveNoise, Dur: 1000 * ms, Vol: 0.8},
		{Wave: WaveSine, From: 120, To: 40, Sweep: SweepExp, Dur: 1000 * ms, Vol: 0.3},
	},
	CueShoot: {{Wave: WaveTriangle, From: 600, Dur: 80 * ms, Vol: 0.03}},
	CueLightning: {
		{Wave: WaveNoise, Dur: 300 * ms, Vol: 0.24},
		{Wave: WaveSaw, From: 800, Dur: 100 * ms, Vol: 0.1},
	},
	CueReplicate: {{Wave: WaveSine, From: 200, To: 600, Dur: 100 * ms, Vol: 0.2, LinearFade: true}},
	CueCoin: {
		{Wave: WaveSine, From: 1200, Dur: 100 * ms, Vol: 0.05},
		{Wave: WaveSine, From: 1600, Dur: 200 * ms, Delay: 50 * ms, Vol: 0.05},
	},
	CueLevelUp: {
		{Wave: WaveSine, From: 440, Dur: 200 * ms, Vol: 0.1},
		{Wave: WaveSine, From: 554, Dur: 200 * ms, Delay: 100 * ms, Vol: 0.1},
		{Wave: WaveSine, From: 659, Dur: 400 * ms, Delay: 200 * ms, Vol: 0.1},
	},
	CueVictory: arpeggio([]float64{261.63, 329.63, 392.00, 523.25, 659.25, 783.99, 1046.50}, 120*ms, 800*ms),
	CueNuke:    {{Wave: WaveNoise, Dur: 1500 * ms, Vol: 0.5}},
	CueDash:    {{Wave: WaveTriangle, From: 300, To: 100, Sweep: SweepExp, Dur: 200 * ms, Vol: 0.2}},
}

func arpeggio(notes []float64, step, dur time.Duration) []tone {
	out := make([]tone, 0, len(notes))
	for i, f := range notes {
		out = append(out, tone{Wave: WaveTriangle, From: f, Dur: dur, Delay: time.Duration(i) * step, Vol: 0.15})
	}
	return out
}
