package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/963krob/event-business-ad-optimizer/internal/config"
	"github.com/963krob/event-business-ad-optimizer/internal/metrics"
	"github.com/963krob/event-business-ad-optimizer/internal/model"
	"github.com/963krob/event-business-ad-optimizer/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --scenario scenario.yaml [--out results/thresholds.csv]")
	fmt.Println("  cli project --name summer-push [--dir ./scenarios]")
	fmt.Println("  cli scenarios [--dir ./scenarios]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project prints the derived metrics and profitability thresholds")
	fmt.Println("  - a scenario YAML carries name + parameters (see the export endpoint)")
}

// scenarioFile is the YAML shape accepted by --scenario and produced by the
// server's export endpoint.
type scenarioFile struct {
	Name       string       `yaml:"name"`
	Parameters model.Params `yaml:"parameters"`
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to scenario YAML")
	name := fs.String("name", "", "Name of a stored scenario")
	dir := fs.String("dir", "", "Scenario directory (defaults to config)")
	outPath := fs.String("out", "", "Optional: write the thresholds table as CSV")
	_ = fs.Parse(args)

	var params model.Params
	var label string

	switch {
	case *scenarioPath != "":
		raw, err := os.ReadFile(*scenarioPath)
		if err != nil {
			fatal(err)
		}
		var sf scenarioFile
		if err := yaml.Unmarshal(raw, &sf); err != nil {
			fatal(fmt.Errorf("parse %s: %w", *scenarioPath, err))
		}
		params = sf.Parameters
		label = sf.Name
		if label == "" {
			label = *scenarioPath
		}
	case *name != "":
		st := openStore(*dir)
		rec, err := st.Load(*name)
		if err != nil {
			fatal(err)
		}
		params = rec.Parameters
		label = rec.Name
	default:
		fmt.Println("--scenario or --name is required")
		os.Exit(2)
	}

	engine := metrics.New()
	proj, err := engine.Project(params)
	if err != nil {
		fatal(err)
	}
	rows, err := engine.Thresholds(params, nil)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Projection for %s\n", label)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("%-28s %s\n", "Average Ticket Price", usd(proj.AvgTicketPrice))
	fmt.Printf("%-28s %s\n", "Total Fixed Costs", usd(proj.TotalFixedCosts))
	fmt.Printf("%-28s %s\n", "Total Event Costs", usd(proj.TotalEventCosts))
	fmt.Printf("%-28s %s\n", "Projected Revenue", usd(proj.ProjectedRevenue))
	fmt.Printf("%-28s %s\n", "Projected Profit/Loss", usd(proj.ProjectedProfit))
	fmt.Printf("%-28s %s\n", "Break-Even ROAS", ratio(proj.BreakevenROAS))
	fmt.Printf("%-28s %s\n", "Current ROAS", ratio(proj.CurrentROAS))
	fmt.Printf("%-28s %s\n", "Break-Even CPP", usdOrInf(proj.BreakevenCPP))
	fmt.Printf("%-28s %s\n", "Current CPP", usdOrInf(proj.CurrentCPP))
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("%-12s %-20s %s\n", "Attendance", "Break-Even ROAS", "Break-Even CPP")
	for _, r := range rows {
		fmt.Printf("%-12s %-20s %s\n",
			fmt.Sprintf("%.0f%%", r.AttendancePct),
			ratio(r.BreakevenROAS),
			usdOrInf(r.BreakevenCPP),
		)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := metrics.WriteThresholdsCSV(*outPath, rows); err != nil {
			fatal(err)
		}
		fmt.Printf("\nwrote %s\n", *outPath)
	}
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	dir := fs.String("dir", "", "Scenario directory (defaults to config)")
	_ = fs.Parse(args)

	st := openStore(*dir)
	names, err := st.List()
	if err != nil {
		fatal(err)
	}
	if len(names) == 0 {
		fmt.Println("no saved scenarios")
		return
	}
	for _, name := range names {
		rec, err := st.Load(name)
		if err != nil {
			fmt.Printf("%s (unreadable: %v)\n", name, err)
			continue
		}
		fmt.Printf("%-24s saved %s\n", name, rec.SavedAt.Format("2006-01-02 15:04"))
	}
}

func openStore(dir string) *store.Store {
	if dir == "" {
		conf, err := config.Load("")
		if err != nil {
			fatal(err)
		}
		dir = conf.Store.Dir
	}
	st, err := store.New(dir)
	if err != nil {
		fatal(err)
	}
	return st
}

func usd(x float64) string {
	return fmt.Sprintf("$%.2f", x)
}

func usdOrInf(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	if math.IsNaN(x) {
		return "N/A"
	}
	return usd(x)
}

func ratio(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	if math.IsNaN(x) {
		return "N/A"
	}
	return fmt.Sprintf("%.2fx", x)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
