// Command iirfilter applies a designed IIR filter to a WAV file.
//
// Usage:
//
//	iirfilter [flags] input.wav output.wav
//
// Examples:
//
//	iirfilter -band lowpass -freq 1000 input.wav output.wav
//	iirfilter -band bandpass -freq 300,3400 -order 6 input.wav output.wav
//	iirfilter -design cheby1 -ripple 0.5 -band highpass -freq 80 in.wav out.wav
//	iirfilter -band lowpass -freq 4000 -zerophase in.wav out.wav
//	iirfilter -band lowpass -freq 3500 -decimate 4 in.wav out.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/filter/rep"
	"github.com/cwbudde/algo-iir/dsp/resample"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "iirfilter:", err)
		os.Exit(1)
	}
}

func run() error {
	bandName := flag.String("band", "lowpass", "filter band: lowpass, highpass, bandpass, bandstop")
	designName := flag.String("design", "butterworth", "prototype: butterworth, cheby1, cheby2, bessel")
	order := flag.Int("order", 4, "filter order")
	freqSpec := flag.String("freq", "", "critical frequency in Hz (two comma-separated values for bandpass/bandstop)")
	ripple := flag.Float64("ripple", 1, "passband ripple (cheby1) or stopband attenuation (cheby2) in dB")
	zeroPhase := flag.Bool("zerophase", false, "forward-backward filtering, cancels the phase delay")
	decimate := flag.Int("decimate", 1, "downsample the filtered output by this factor")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirfilter [flags] input.wav output.wav\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return fmt.Errorf("expected input and output file")
	}

	if *freqSpec == "" {
		return fmt.Errorf("-freq is required")
	}

	freqs, err := parseFreqs(*freqSpec)
	if err != nil {
		return err
	}

	band, err := parseBand(*bandName)
	if err != nil {
		return err
	}

	prototype, err := parsePrototype(*designName)
	if err != nil {
		return err
	}

	if *decimate < 1 {
		return fmt.Errorf("decimation factor must be at least 1")
	}

	return filterFile(flag.Arg(0), flag.Arg(1), filterParams{
		band:      band,
		prototype: prototype,
		order:     *order,
		freqs:     freqs,
		rippleDB:  *ripple,
		zeroPhase: *zeroPhase,
		decimate:  *decimate,
	})
}

type filterParams struct {
	band      design.Band
	prototype design.Prototype
	order     int
	freqs     []float64
	rippleDB  float64
	zeroPhase bool
	decimate  int
}

func filterFile(inPath, outPath string, p filterParams) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	decoder := wav.NewDecoder(in)
	if !decoder.IsValidFile() {
		return fmt.Errorf("%s: not a valid WAV file", inPath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	channels := format.NumChannels

	sos, err := design.IIRSOS(p.order, p.band, p.freqs,
		design.WithPrototype(p.prototype),
		design.WithRipple(p.rippleDB),
		design.WithSampleRate(float64(format.SampleRate)))
	if err != nil {
		return fmt.Errorf("design: %w", err)
	}

	scale := float64(int(1) << (bitDepth - 1))
	frames := len(buf.Data) / channels

	filtered := make([][]float64, channels)

	for ch := range channels {
		x := make([]float64, frames)
		for i := range x {
			x[i] = float64(buf.Data[i*channels+ch]) / scale
		}

		y, err := filterChannel(x, sos, p)
		if err != nil {
			return err
		}

		filtered[ch] = y
	}

	outRate := format.SampleRate / p.decimate
	outFrames := len(filtered[0])

	out := make([]int, outFrames*channels)
	for ch, y := range filtered {
		for i, v := range y {
			out[i*channels+ch] = clampSample(v*scale, bitDepth)
		}
	}

	return writeWAV(outPath, out, outRate, bitDepth, channels)
}

// filterChannel runs one channel through a fresh filter instance, then
// optionally downsamples. The designed filter is expected to band-limit the
// signal below the new Nyquist frequency before decimation.
func filterChannel(x []float64, sos rep.SOS, p filterParams) ([]float64, error) {
	var opts []iir.SOSOption
	if p.zeroPhase {
		opts = append(opts, iir.WithSOSZeroPhase())
	}

	f, err := iir.NewSOSFilter(sos, core.PostProcessing, opts...)
	if err != nil {
		return nil, err
	}

	y, err := f.Apply(x)
	if err != nil {
		return nil, err
	}

	if p.decimate == 1 {
		return y, nil
	}

	down, err := resample.NewDownsampler(p.decimate, core.PostProcessing)
	if err != nil {
		return nil, err
	}

	return down.Apply(y)
}

func parseFreqs(spec string) ([]float64, error) {
	parts := strings.Split(spec, ",")
	freqs := make([]float64, 0, len(parts))

	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q", part)
		}

		freqs = append(freqs, f)
	}

	return freqs, nil
}

func parseBand(name string) (design.Band, error) {
	switch strings.ToLower(name) {
	case "lowpass", "lp":
		return design.Lowpass, nil
	case "highpass", "hp":
		return design.Highpass, nil
	case "bandpass", "bp":
		return design.Bandpass, nil
	case "bandstop", "bs", "notch":
		return design.Bandstop, nil
	default:
		return 0, fmt.Errorf("unknown band %q", name)
	}
}

func parsePrototype(name string) (design.Prototype, error) {
	switch strings.ToLower(name) {
	case "butterworth", "butter":
		return design.Butterworth, nil
	case "cheby1", "chebyshev1":
		return design.Chebyshev1, nil
	case "cheby2", "chebyshev2":
		return design.Chebyshev2, nil
	case "bessel":
		return design.Bessel, nil
	default:
		return 0, fmt.Errorf("unknown prototype %q", name)
	}
}

func clampSample(v float64, bitDepth int) int {
	limit := int(1)<<(bitDepth-1) - 1

	s := int(v)
	if s > limit {
		return limit
	}

	if s < -limit-1 {
		return -limit - 1
	}

	return s
}

func writeWAV(path string, data []int, sampleRate, bitDepth, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return enc.Close()
}
