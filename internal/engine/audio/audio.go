// Package audio mixes the per-aircraft engine loops and the player's stall
// and overspeed warnings.
//
// The renderer drives a Mixer through the engine timing contract: one
// AdvanceEngine per visible aircraft per frame, MuteEngine for aircraft out
// of range. The Mixer is itself a beep.Streamer; the host hands it to the
// speaker.
package audio

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"go.uber.org/zap"

	"github.com/sar2/sar2/internal/logger"
	"github.com/sar2/sar2/internal/scene"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// resampleQuality is the beep resampler quality for engine loops.
const resampleQuality = 3

// channel is one looping recording with its own volume and playback rate.
type channel struct {
	resampler *beep.Resampler
	volume    *effects.Volume
}

func newChannel(s beep.Streamer) *channel {
	r := beep.ResampleRatio(resampleQuality, 1, s)
	return &channel{
		resampler: r,
		volume:    &effects.Volume{Streamer: r, Base: dbBase, Silent: true},
	}
}

func (c *channel) set(vol, ratio float64) {
	if vol <= 0 || ratio <= 0 {
		c.volume.Silent = true
		return
	}
	c.volume.Silent = false
	c.volume.Volume = volumeToDb(vol)
	c.resampler.SetRatio(ratio)
}

type engineVoice struct {
	inside, outside       *channel
	insideSrc, outsideSrc *EngineSource
	levels                Levels
	advanced              int
}

// cue is a repeating warning sound started and stopped by state changes.
type cue struct {
	ctrl    *beep.Ctrl
	playing bool
}

func (c *cue) set(on bool) (changed bool) {
	if on == c.playing {
		return false
	}
	c.playing = on
	if c.ctrl != nil {
		c.ctrl.Paused = !on
	}
	return true
}

// Mixer holds the engine voices and warning cues.
type Mixer struct {
	mu  sync.Mutex
	log *zap.Logger

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	engineVolume float64
	muted        bool

	mixer   *beep.Mixer
	master  *effects.Volume
	engines map[*scene.Object]*engineVoice

	stall     cue
	overspeed cue
}

// New creates a mixer with no voices.
func New() *Mixer {
	m := &Mixer{
		log:          logger.Named("audio"),
		masterVolume: 1.0,
		engineVolume: 1.0,
		mixer:        &beep.Mixer{},
		engines:      make(map[*scene.Object]*engineVoice),
	}
	m.master = &effects.Volume{Streamer: m.mixer, Base: dbBase}
	return m
}

// Stream implements beep.Streamer. Called from the speaker goroutine.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := m.master.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	// The mixer never drains.
	return len(samples), true
}

// Err implements beep.Streamer.
func (m *Mixer) Err() error {
	return nil
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Mixer) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateMaster()
}

// SetEngineVolume sets the engine loop volume (0.0 to 1.0).
func (m *Mixer) SetEngineVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engineVolume = clamp(vol, 0, 1)
	for _, v := range m.engines {
		m.applyLevels(v)
	}
}

// SetMuted silences all output without forgetting state.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateMaster()
}

// GetMasterVolume returns the master volume.
func (m *Mixer) GetMasterVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.masterVolume
}

// GetEngineVolume returns the engine loop volume.
func (m *Mixer) GetEngineVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engineVolume
}

func (m *Mixer) updateMaster() {
	if m.muted || m.masterVolume <= 0 {
		m.master.Silent = true
		return
	}
	m.master.Silent = false
	m.master.Volume = volumeToDb(m.masterVolume)
}

// RegisterEngine attaches inside and outside engine loops to an aircraft.
// Either stream may be nil; levels are still tracked without sound.
func (m *Mixer) RegisterEngine(obj *scene.Object, inside, outside beep.Streamer, insideSrc, outsideSrc *EngineSource) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.voice(obj)
	v.insideSrc, v.outsideSrc = insideSrc, outsideSrc
	if inside != nil {
		v.inside = newChannel(inside)
		m.mixer.Add(v.inside.volume)
	}
	if outside != nil {
		v.outside = newChannel(outside)
		m.mixer.Add(v.outside.volume)
	}
}

// SetWarningSounds sets the repeating stall and overspeed warning loops.
// They start paused.
func (m *Mixer) SetWarningSounds(stall, overspeed beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if stall != nil {
		m.stall.ctrl = &beep.Ctrl{Streamer: stall, Paused: !m.stall.playing}
		m.mixer.Add(m.stall.ctrl)
	}
	if overspeed != nil {
		m.overspeed.ctrl = &beep.Ctrl{Streamer: overspeed, Paused: !m.overspeed.playing}
		m.mixer.Add(m.overspeed.ctrl)
	}
}

func (m *Mixer) voice(obj *scene.Object) *engineVoice {
	v, ok := m.engines[obj]
	if !ok {
		v = &engineVoice{}
		m.engines[obj] = v
	}
	return v
}

func (m *Mixer) applyLevels(v *engineVoice) {
	if v.inside != nil {
		v.inside.set(v.levels.Inside*m.engineVolume, v.levels.Ratio)
	}
	if v.outside != nil {
		v.outside.set(v.levels.Outside*m.engineVolume, v.levels.Ratio)
	}
}

// AdvanceEngine updates an aircraft's engine loops for this frame.
func (m *Mixer) AdvanceEngine(obj *scene.Object, u EngineUpdate) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.voice(obj)
	v.levels = EngineLevels(u, v.insideSrc, v.outsideSrc)
	v.advanced++
	m.applyLevels(v)
}

// MuteEngine silences an aircraft's engine loops.
func (m *Mixer) MuteEngine(obj *scene.Object) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.voice(obj)
	v.levels = Levels{}
	m.applyLevels(v)
}

// UpdateStall starts or stops the stall warning and reports whether the
// aircraft is stalling.
func (m *Mixer) UpdateStall(obj *scene.Object, in StallInput) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	stalling := Stalling(in)
	if m.stall.set(stalling) {
		m.log.Debug("stall warning", zap.String("object", obj.Name), zap.Bool("on", stalling))
	}
	return stalling
}

// UpdateOverspeed starts or stops the overspeed warning.
func (m *Mixer) UpdateOverspeed(obj *scene.Object, overspeed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.overspeed.set(overspeed) {
		m.log.Debug("overspeed warning", zap.String("object", obj.Name), zap.Bool("on", overspeed))
	}
}

// Forget drops an aircraft's voice, for objects removed from the scene.
func (m *Mixer) Forget(obj *scene.Object) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.engines[obj]
	if !ok {
		return
	}
	v.levels = Levels{}
	m.applyLevels(v)
	delete(m.engines, obj)
}

// EngineLevels returns the last computed levels of an aircraft and the
// number of AdvanceEngine calls it received.
func (m *Mixer) EngineLevels(obj *scene.Object) (Levels, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.engines[obj]
	if !ok {
		return Levels{}, 0
	}
	return v.levels, v.advanced
}

// StallPlaying reports whether the stall warning is on.
func (m *Mixer) StallPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stall.playing
}

// OverspeedPlaying reports whether the overspeed warning is on.
func (m *Mixer) OverspeedPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overspeed.playing
}
