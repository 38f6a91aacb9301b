package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/gosuri/uilive"
	"github.com/grafana/globalconf"
	log "github.com/sirupsen/logrus"

	"github.com/intcatch/platymeta/aggregate"
	"github.com/intcatch/platymeta/conf"
	"github.com/intcatch/platymeta/errors"
	"github.com/intcatch/platymeta/logger"
	"github.com/intcatch/platymeta/series"
	"github.com/intcatch/platymeta/telemetry"
)

var (
	version      = "(none)"
	showVersion  = flag.Bool("version", false, "print version string")
	confFile     = flag.String("config", "/etc/platymeta/platymeta.ini", "configuration file path")
	gridStep     = flag.String("grid-step", "10s", "width of one output sample interval")
	ecCutoff     = flag.Float64("ec-water-cutoff", conf.DefaultECWaterCutoff, "EC reading above which the boat counts as in the water")
	dangerVolt   = flag.Float64("danger-voltage", conf.DefaultDangerVoltage, "voltage subtracted from raw battery readings")
	voltWindow   = flag.Int("voltage-window", conf.DefaultVoltageWindow, "battery samples per median/drain-rate estimate")
	poseWindow   = flag.Int("position-window", conf.DefaultPositionWindow, "pose samples per velocity estimate")
	defaultInput = flag.String("default-input", "", "log file to fall back to when no positional argument is given")
	dump         = flag.Bool("dump", false, "dump every sample of every series instead of the final-value summary")
	logLevel     = flag.String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")
)

func init() {
	formatter := &logger.TextFormatter{}
	formatter.TimestampFormat = "2006-01-02 15:04:05.000"
	formatter.ModuleName = "platymeta"
	log.SetFormatter(formatter)
}

func main() {
	flag.Usage = func() {
		fmt.Println("platymeta")
		fmt.Println("Derives operational statistics from a platypus boat telemetry log")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println()
		fmt.Println("	platymeta [flags] <logfile>")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println()
		fmt.Println("	platymeta -grid-step 30s platypus_20180712_040554.txt")
		fmt.Println()
		fmt.Println("Flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Only try and parse the conf file if it exists
	path := ""
	if _, err := os.Stat(*confFile); err == nil {
		path = *confFile
	}
	config, err := globalconf.NewWithOptions(&globalconf.Options{
		Filename:  path,
		EnvPrefix: "PM_",
	})
	if err != nil {
		log.Fatalf("error with configuration file: %s", err)
	}
	config.ParseAll()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("failed to parse log-level, %s", err.Error())
	}
	log.SetLevel(lvl)

	if *showVersion {
		fmt.Printf("platymeta (version: %s - runtime: %s)\n", version, runtime.Version())
		return
	}

	input := *defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	} else if input != "" {
		log.Warnf("no log file given, falling back to %s", input)
	} else {
		flag.Usage()
		log.Fatal("no log file given")
	}

	start, err := telemetry.StartTime(input)
	if err != nil {
		fatal(err)
	}

	cfg := conf.NewEngine()
	if err := cfg.SetGridStep(*gridStep); err != nil {
		fatal(err)
	}
	cfg.ECWaterCutoff = *ecCutoff
	cfg.DangerVoltage = *dangerVolt
	cfg.VoltageWindow = *voltWindow
	cfg.PositionWindow = *poseWindow
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	writer := uilive.New()
	writer.Start()
	store, err := aggregate.ParseFileProgress(input, cfg, func(lines int) {
		fmt.Fprintf(writer, "parsing %s: %d lines\n", input, lines)
	})
	writer.Stop()
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s (started %s, %d samples per series)\n", input, start.Format("2006-01-02 15:04:05"), store.Len())
	if *dump {
		dumper := spew.ConfigState{Indent: "\t", SortKeys: true}
		for _, name := range series.Names {
			fmt.Printf("%s:\n", name)
			dumper.Dump(store.Get(name))
		}
		return
	}
	printSummary(store)
}

func printSummary(store *series.Store) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "series\tfinal\t")
	for _, name := range series.Names {
		fmt.Fprintf(w, "%s\t%.3f\t\n", name, store.Last(name))
	}
	w.Flush()
}

func fatal(err error) {
	log.Error(err.Error())
	os.Exit(errors.Code(err))
}
