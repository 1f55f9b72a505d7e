/*

Nptest explores every rejection region of a finite discrete
hypothesis-testing problem: it computes the size (Type I error rate)
and power of each region, flags regions that are dominated by a better
region and regions that are likelihood-ratio tests (LRTs), and selects
the LRT region of maximum power under a size cap, as in the
Neyman-Pearson lemma.

The basic usage of nptest looks like this:

	nptest -null 0.5,0.5 -alt 0.9,0.1 -alpha 0.6

, this prints a per-region report and the selected region. The problem
can also come from a YAML scenario file:

	nptest -plot regions.png scenario.yaml

To see all the options run:

	nptest -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"gonum.org/v1/plot"

	"github.com/npstat/nptest/region"
	"github.com/npstat/nptest/regionplot"
	"github.com/npstat/nptest/report"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("nptest")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("nptest", "rejection-region explorer for finite discrete hypothesis tests").Version(version)

	// input scenario
	scenarioFileName = app.Arg("scenario", "YAML scenario file (keys h0, h1, alpha)").ExistingFile()
	nullFlag         = app.Flag("null", "comma-separated likelihoods under the null hypothesis").String()
	altFlag          = app.Flag("alt", "comma-separated likelihoods under the alternative hypothesis").String()
	alpha            = app.Flag("alpha", "maximum acceptable size").Default("0.05").Float64()
	noSelect         = app.Flag("noselect", "only classify the regions, don't select one").Bool()

	// input/output
	outF     = app.Flag("out", "write the region report to a file").String()
	plotF    = app.Flag("plot", "write the size-power scatter plot to a file (png, pdf or svg)").String()
	jsonF    = app.Flag("json", "write json output to a file").String()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// RunSummary stores the run summary for the JSON output.
type RunSummary struct {
	Version     string   `json:"version"`
	CommandLine []string `json:"command_line"`
	*report.Summary
}

func run() *report.Summary {
	scen, err := loadScenario(*scenarioFileName, *nullFlag, *altFlag, *alpha)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("%d outcomes, alpha=%g", len(scen.Null), scen.Alpha)

	c, err := region.Classify(scen.Null, scen.Alt)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *outF != "" {
		f, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating report file:", err)
		}
		defer f.Close()
	}
	if err := report.WriteRegions(f, c); err != nil {
		log.Fatal(err)
	}

	summary, err := report.NewSummary(c)
	if err != nil {
		log.Fatal(err)
	}
	log.Noticef("%d regions, %d admissible, %d LRT",
		summary.NRegions, summary.NAdmissible, summary.NLRT)

	if !*noSelect {
		err := summary.AddSelection(c, scen.Alpha)
		switch {
		case err == region.ErrNoRegion:
			log.Warningf("No LRT region with size below %g", scen.Alpha)
		case err != nil:
			log.Fatal(err)
		default:
			best := c.Regions[summary.BestIndex]
			log.Noticef("Selected region %v: size=%g, power=%g",
				best.Outcomes, best.Size, best.Power)
		}
	}

	if *plotF != "" {
		var p *plot.Plot
		if *noSelect {
			p, err = regionplot.Regions(c)
		} else {
			p, err = regionplot.Selection(c, scen.Alpha)
		}
		if err != nil {
			log.Fatal(err)
		}
		if err := regionplot.Save(p, *plotF); err != nil {
			log.Fatal("Error saving plot:", err)
		}
		log.Infof("Plot written to %s", *plotF)
	}

	return summary
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "nptest")
	logging.SetLevel(level, "region")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary := run()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(&RunSummary{
			Version:     version,
			CommandLine: os.Args,
			Summary:     summary,
		})
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
