package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/dudk/patch"
	"github.com/dudk/patch/spectrum"
	"github.com/dudk/patch/wav"
)

type spectrumCommand struct {
	in  string
	top int
}

//Implement patch command interface
func (cmd *spectrumCommand) Name() string {
	return "spectrum"
}

func (cmd *spectrumCommand) Help() string {
	return "Print the loudest frequency bins of a wav file"
}

func (cmd *spectrumCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input wav file to analyze (required)")
	fs.IntVar(&cmd.top, "top", 10, "number of bins to print")
}

func (cmd *spectrumCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	g := patch.New()
	source := wav.NewSource(g, cmd.in)
	analyzer := spectrum.New(g)
	if _, err := source.Signal().Get(); err != nil {
		return err
	}
	if err := patch.Connect(source.Signal(), analyzer.SetSignal()); err != nil {
		return err
	}

	value, err := analyzer.Magnitude().Get()
	if err != nil {
		return err
	}
	magnitudes := value.([]float64)
	if len(magnitudes) < 2 {
		return fmt.Errorf("no spectrum in %s", cmd.in)
	}
	rate, err := source.SampleRate().Get()
	if err != nil {
		return err
	}

	bins := make([]int, len(magnitudes))
	for i := range bins {
		bins[i] = i
	}
	sort.Slice(bins, func(i, j int) bool {
		return magnitudes[bins[i]] > magnitudes[bins[j]]
	})
	if cmd.top > len(bins) {
		cmd.top = len(bins)
	}
	// bins span half the sample rate
	binWidth := float64(rate.(int)) / float64(2*(len(magnitudes)-1))
	for _, bin := range bins[:cmd.top] {
		fmt.Printf("%8.1f Hz\t%v\n", float64(bin)*binWidth, magnitudes[bin])
	}
	return nil
}

func (cmd *spectrumCommand) Validate() error {
	if cmd.in == "" {
		return fmt.Errorf("Missing -in required flag\n")
	}
	return nil
}
