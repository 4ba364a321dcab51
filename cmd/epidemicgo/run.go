package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dlantz/epidemicgo"
	"github.com/dlantz/epidemicgo/internal/ingest"
)

var (
	contactsPath string
	communityCSV string
	sinks        []string
	csvBasePath  string
	sqlitePath   string
	metricsAddr  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a simulation to completion",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVar(&contactsPath, "contacts", "", "path to the contact stream CSV (timestamp,u,v)")
	runCmd.Flags().StringVar(&communityCSV, "community", "", "path to the community assignment CSV (id,zone), required for model=measles")
	runCmd.Flags().StringArrayVar(&sinks, "sink", []string{"log"}, "delta sink(s) to enable: log, csv, sqlite, metrics (repeatable)")
	runCmd.Flags().StringVar(&csvBasePath, "csv-path", "./run", "basepath for the csv sink's table files")
	runCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "./run.db", "database path for the sqlite sink")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) for the metrics sink")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if cfgPath == "" {
		return fmt.Errorf("--config flag is required")
	}
	if contactsPath == "" {
		return fmt.Errorf("--contacts flag is required")
	}

	params, err := epidemicgo.LoadParameters(cfgPath)
	if err != nil {
		return fmt.Errorf("loading parameters: %w", err)
	}

	contacts, err := ingest.LoadContacts(contactsPath)
	if err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}

	var community map[int]int
	if communityCSV != "" {
		community, err = ingest.LoadCommunity(communityCSV)
		if err != nil {
			return fmt.Errorf("loading community: %w", err)
		}
	}

	epidemicgo.InitLogging(debug)

	driver := epidemicgo.NewDriver(*params, contacts, community)
	sink, closeSink, err := buildSink(driver)
	if err != nil {
		return err
	}
	defer closeSink()

	ch := driver.Run(context.Background())
	return epidemicgo.Drain(ch, sink)
}

// buildSink assembles the requested sinks into a single MultiSink and
// returns a cleanup function for any that hold resources open.
func buildSink(driver *epidemicgo.Driver) (epidemicgo.DeltaSink, func(), error) {
	var built []epidemicgo.DeltaSink
	var closers []func()

	for _, kind := range sinks {
		switch kind {
		case "log":
			built = append(built, epidemicgo.NewLogSink(driver.RunLogger()))

		case "csv":
			built = append(built, epidemicgo.NewCSVDeltaLogger(csvBasePath, driver.RunID.String()))

		case "sqlite":
			logger, err := epidemicgo.NewSQLiteDeltaLogger(sqlitePath, driver.RunID.String())
			if err != nil {
				return nil, nil, fmt.Errorf("opening sqlite sink: %w", err)
			}
			if err := logger.Init(); err != nil {
				return nil, nil, fmt.Errorf("initializing sqlite sink: %w", err)
			}
			built = append(built, logger)
			closers = append(closers, func() { logger.Close() })

		case "metrics":
			reg := prometheus.NewRegistry()
			metrics, err := epidemicgo.NewMetricsSink(reg, driver.RunID.String())
			if err != nil {
				return nil, nil, fmt.Errorf("registering metrics: %w", err)
			}
			built = append(built, metrics)
			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				srv := &http.Server{Addr: metricsAddr, Handler: mux}
				go srv.ListenAndServe()
				closers = append(closers, func() { srv.Close() })
			}

		default:
			return nil, nil, fmt.Errorf("%q is not a valid sink type (log|csv|sqlite|metrics)", kind)
		}
	}

	return epidemicgo.NewMultiSink(built...), func() {
		for _, c := range closers {
			c()
		}
	}, nil
}
