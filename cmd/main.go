package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/google/uuid"

	"onebrc/pkg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("brc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flagProf := flags.String("prof", "", "write cpu profile to file")
	flagTrace := flags.String("trace", "", "write trace to file")
	flagTimings := flags.Bool("timings", false, "log phase timings to stderr")
	flagPlot := flags.String("plot", "", "write a worker timeline image to file (.png, .svg, .pdf)")

	flagFile := flags.String("file", "measurements.txt", "1brc file")
	flagWorkers := flags.Int("workers", runtime.NumCPU(), "parallel aggregators")
	flagBraces := flags.Bool("braces", false, "wrap the summary in '{' and '}'")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log.SetOutput(stderr)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[" + uuid.NewString()[:8] + "] ")

	if *flagTrace != "" {
		f, err := os.Create(*flagTrace)
		if err != nil {
			log.Print(err)
			return 1
		}
		trace.Start(f)
		defer f.Close()
		defer trace.Stop()
	}
	if *flagProf != "" {
		f, err := os.Create(*flagProf)
		if err != nil {
			log.Print(err)
			return 1
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	opts := pkg.Options{
		Workers: *flagWorkers,
		Format:  pkg.FormatOptions{Braces: *flagBraces},
	}
	if *flagTimings || *flagPlot != "" {
		opts.Timings = pkg.NewTimings()
	}

	out := bufio.NewWriter(stdout)
	if err := pkg.Run(*flagFile, out, opts); err != nil {
		log.Print(err)
		return 1
	}
	if err := out.Flush(); err != nil {
		log.Print(err)
		return 1
	}

	if *flagTimings {
		opts.Timings.Report()
	}
	if *flagPlot != "" {
		if err := pkg.PlotEvents(opts.Timings.Events(), *flagPlot); err != nil {
			log.Print(err)
		}
	}
	return 0
}
