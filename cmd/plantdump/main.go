// Command plantdump prints the polar chart plant dataset as JSON or YAML.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/polar-plant-data/internal/logging"
	"github.com/i474232898/polar-plant-data/internal/plants"
)

type Options struct {
	Format    string `short:"f" long:"format"    env:"PLANTDUMP_FORMAT" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Direction string `short:"d" long:"direction" description:"Print only the sample for this direction"`
	Series    string `short:"s" long:"series"    description:"Print only the values of this category (Tree, Flower, Weed)"`
	Verbose   bool   `short:"v" long:"verbose"   description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	logging.Setup(level, true)

	if err := run(os.Stdout, opts, plants.NewPlantDataProvider()); err != nil {
		log.Fatal().Err(err).Msg("Dump failed")
	}
}

func run(w io.Writer, opts Options, provider *plants.PlantDataProvider) error {
	if opts.Direction != "" && opts.Series != "" {
		return fmt.Errorf("--direction and --series are mutually exclusive")
	}

	var out any
	switch {
	case opts.Direction != "":
		d, err := plants.ParseDirection(opts.Direction)
		if err != nil {
			return err
		}
		s, err := provider.Sample(d)
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("sample %s: %w", s.Direction, err)
		}
		out = s
	case opts.Series != "":
		c, err := plants.ParseCategory(opts.Series)
		if err != nil {
			return err
		}
		values, err := provider.Series(c)
		if err != nil {
			return err
		}
		out = seriesOutput{Category: c, Directions: plants.Directions(), Values: values}
	default:
		samples := provider.Samples()
		for _, s := range samples {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("sample %s: %w", s.Direction, err)
			}
		}
		out = samples
	}

	log.Debug().Str("format", opts.Format).Msg("Writing dataset")
	return encode(w, opts.Format, out)
}

type seriesOutput struct {
	Category   plants.Category    `json:"category" yaml:"category"`
	Directions []plants.Direction `json:"directions" yaml:"directions"`
	Values     []int              `json:"values" yaml:"values,flow"`
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
