package main

import (
	"flag"
	"fmt"

	"github.com/dudk/patch"
	patchconfig "github.com/dudk/patch/config"
	"github.com/dudk/patch/gain"
	"github.com/dudk/patch/generator"
	"github.com/dudk/patch/signal"
	"github.com/dudk/patch/wav"
)

type toneCommand struct {
	out        string
	configPath string
	frequency  float64
	sampleRate int
	length     int
	factor     float64
}

//Implement patch command interface
func (cmd *toneCommand) Name() string {
	return "tone"
}

func (cmd *toneCommand) Help() string {
	return "Generate a sine tone and save it to a wav file"
}

func (cmd *toneCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.out, "out", "", "output wav file (required)")
	fs.StringVar(&cmd.configPath, "config", "", "optional yaml config file")
	fs.Float64Var(&cmd.frequency, "freq", 440, "tone frequency in Hz")
	fs.IntVar(&cmd.sampleRate, "rate", 44100, "sample rate in Hz")
	fs.IntVar(&cmd.length, "length", 44100, "number of samples")
	fs.Float64Var(&cmd.factor, "gain", 1, "amplification factor")
}

func (cmd *toneCommand) Run() error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	conf := patchconfig.Default()
	if cmd.configPath != "" {
		var err error
		if conf, err = patchconfig.Load(cmd.configPath); err != nil {
			return err
		}
	}

	g := patch.New(patch.WithDefaultCaching(conf.Caching))
	sine := generator.NewSine(g)
	gn := gain.New(g)
	sink, err := wav.NewSink(g, cmd.out, signal.BitDepth16)
	if err != nil {
		return err
	}
	if err := patch.Connect(sine.Signal(), gn.SetSignal()); err != nil {
		return err
	}
	if err := patch.Connect(gn.Signal(), sink.SetSignal()); err != nil {
		return err
	}

	if err := sink.SetSampleRate().Set(cmd.sampleRate); err != nil {
		return err
	}
	if err := gn.SetFactor().Set(cmd.factor); err != nil {
		return err
	}
	if err := sine.SetSampleRate().Set(cmd.sampleRate); err != nil {
		return err
	}
	if err := sine.SetLength().Set(cmd.length); err != nil {
		return err
	}
	if err := sine.SetFrequency().Set(cmd.frequency); err != nil {
		return err
	}
	if err := sink.Save().Fire(); err != nil {
		return err
	}
	fmt.Printf("Saved %v samples to %s\n", cmd.length, cmd.out)
	return nil
}

func (cmd *toneCommand) Validate() error {
	if cmd.out == "" {
		return fmt.Errorf("Missing -out required flag\n")
	}
	return nil
}
