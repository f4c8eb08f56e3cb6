package transport

// WaveformSample is one point of an intensity schedule plot.
type WaveformSample struct {
	T         float64 // normalized cycle time
	Amplitude float64
}

// Waveforms samples both trap intensity schedules at fixed resolution
// across one full cycle. The series are caches of a pure function of the
// schedule, regenerated per frame, never persisted history.
func (s Schedule) Waveforms(n int) (slm, aod []WaveformSample) {
	if n < 2 {
		n = 2
	}
	slm = make([]WaveformSample, n)
	aod = make([]WaveformSample, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		st := s.StateAt(t)
		slm[i] = WaveformSample{T: t, Amplitude: st.SLMPower}
		aod[i] = WaveformSample{T: t, Amplitude: st.AODPower}
	}
	return slm, aod
}

// Amplitudes strips a waveform to its raw values for chart plotting.
func Amplitudes(w []WaveformSample) []float64 {
	vals := make([]float64, len(w))
	for i, s := range w {
		vals[i] = s.Amplitude
	}
	return vals
}

// CursorIndex locates the live "now" marker within an n-sample waveform for
// normalized cycle time t.
func CursorIndex(t float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(t * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
