package main

import(
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abworrall/rsprays/pkg/retinex"
)

var(
	fVerbosity int
	fConfigFile string
	fSprays int
	fSpraySize int
	fKernelSize int
	fRowsStep int
	fColsStep int
	fUpperBound float64
	fSeed int64
	fDumpGrids bool
	fTonemapper string
	fPreviewWidth int
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fConfigFile, "config", "", "YAML config file; flags override its values")

	flag.IntVar(&fSprays, "N", 0, "number of sprays per grid pixel (default 1)")
	flag.IntVar(&fSpraySize, "n", 0, "size of individual spray (default 225)")
	flag.IntVar(&fKernelSize, "k", 0, "averaging kernel size, 1 to disable (default 5)")
	flag.IntVar(&fRowsStep, "r", 0, "rows step (default 10)")
	flag.IntVar(&fColsStep, "c", 0, "columns step (default 10)")
	flag.Float64Var(&fUpperBound, "upper", 0, "maximal value of a pixel channel (default 255, or 65535 for 16-bit input)")
	flag.Int64Var(&fSeed, "seed", 0, "random seed, 0 to seed from the clock")

	flag.BoolVar(&fDumpGrids, "dumpgrids", false, "write PNGs of the estimation grids")
	flag.StringVar(&fTonemapper, "tonemapper", "", "for .hdr output, also write tonemapped PNG previews: all, or one of "+retinex.ListTonemappers())
	flag.IntVar(&fPreviewWidth, "previewwidth", 0, "max width of tonemapped previews (0 = full size)")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] input_file output_file [N [n [k [r [c [upper_bound]]]]]]\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "\tN           - number of sprays\n")
	fmt.Fprintf(os.Stderr, "\tn           - size of individual spray\n")
	fmt.Fprintf(os.Stderr, "\tk           - kernel size\n")
	fmt.Fprintf(os.Stderr, "\tr           - rows step\n")
	fmt.Fprintf(os.Stderr, "\tc           - columns step\n")
	fmt.Fprintf(os.Stderr, "\tupper_bound - maximal value for of a pixel channel\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	inFile, outFile := args[0], args[1]

	cfg, err := buildConfig(args[2:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	im, err := retinex.LoadImage(inFile)
	if errors.Is(err, retinex.ErrEmptyInput) {
		log.Fatalf("Nothing to do, %v", err)
	} else if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded %s (%s)", im, im.Exif)

	est, err := retinex.EstimateImage(im, cfg)
	if err != nil {
		log.Fatalf("Estimation failed: %v", err)
	}
	log.Printf("Estimated %s", est.Illumination)
	if cfg.Verbosity > 0 {
		log.Printf("%s", est.Report)
	}

	out, err := im.Corrected(est.Illumination)
	if err != nil {
		log.Fatalf("Correction failed: %v", err)
	}
	if cfg.Verbosity > 0 {
		log.Printf("Before: %s", retinex.MeasureCast(&im.Grid))
		log.Printf("After : %s", retinex.MeasureCast(&out.Grid))
	}

	if err := out.Write(outFile); err != nil {
		log.Fatal(err)
	}
	log.Printf("Output file written '%s'\n", outFile)

	if strings.EqualFold(filepath.Ext(outFile), ".hdr") {
		prefix := strings.TrimSuffix(outFile, filepath.Ext(outFile))
		files, err := out.WritePreviews(cfg, prefix)
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range files {
			log.Printf("Preview written '%s'\n", f)
		}
	}
}

// buildConfig layers the config: defaults, then the YAML file, then any
// positional numbers, then flags.
func buildConfig(positional []string) (retinex.Config, error) {
	cfg := retinex.NewConfig()
	if fConfigFile != "" {
		var err error
		if cfg, err = retinex.LoadConfig(fConfigFile); err != nil {
			return cfg, err
		}
		log.Printf("Loaded base configuration from %s\n", fConfigFile)
	}

	if err := applyPositional(&cfg, positional); err != nil {
		return cfg, err
	}

	// Override with command line flags, if relevant
	if fVerbosity > 0 { cfg.Verbosity = fVerbosity }
	if fSprays > 0 { cfg.Sprays = fSprays }
	if fSpraySize > 0 { cfg.SpraySize = fSpraySize }
	if fKernelSize > 0 { cfg.KernelSize = fKernelSize }
	if fRowsStep > 0 { cfg.RowsStep = fRowsStep }
	if fColsStep > 0 { cfg.ColsStep = fColsStep }
	if fUpperBound > 0 { cfg.UpperBound = fUpperBound }
	if fSeed != 0 { cfg.Seed = fSeed }
	if fTonemapper != "" { cfg.Tonemapper = fTonemapper }
	if fPreviewWidth > 0 { cfg.PreviewWidth = fPreviewWidth }

	// Just set the bool vars
	cfg.DumpGrids = cfg.DumpGrids || fDumpGrids

	return cfg, cfg.Validate()
}

// applyPositional handles the old-style trailing numbers:
// N n k r c upper_bound, in that order, any prefix of them.
func applyPositional(cfg *retinex.Config, positional []string) error {
	if len(positional) > 6 {
		return fmt.Errorf("too many arguments (%d), see -h", len(positional)+2)
	}

	ints := []*int{&cfg.Sprays, &cfg.SpraySize, &cfg.KernelSize, &cfg.RowsStep, &cfg.ColsStep}
	for i, arg := range positional {
		if i < len(ints) {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("argument %d '%s': %v", i+3, arg, err)
			}
			*ints[i] = v
			continue
		}

		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("upper_bound '%s': %v", arg, err)
		}
		cfg.UpperBound = v
	}

	return nil
}
