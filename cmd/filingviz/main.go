package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/js5810/VisualizeFilings/internal/catalog"
	"github.com/js5810/VisualizeFilings/internal/chart"
	"github.com/js5810/VisualizeFilings/internal/compare"
	"github.com/js5810/VisualizeFilings/internal/config"
	"github.com/js5810/VisualizeFilings/internal/edgar"
	"github.com/js5810/VisualizeFilings/internal/finnhub"
	"github.com/js5810/VisualizeFilings/internal/metric"
	"github.com/js5810/VisualizeFilings/internal/model"
	"github.com/js5810/VisualizeFilings/internal/version"
)

const defaultMetric = "EarningsPerShareBasic"

var (
	configPath string
	verbose    bool
	metricName string
	outputDir  string
	noOpen     bool
	xMetric    string
	yMetric    string
	grouping   string
	bins       int
)

func main() {
	// Pick up USER_AGENT / FINNHUB_API_KEY from a local .env if present.
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "filingviz",
		Short: "Visualize SEC filing metrics across companies",
		Long: `filingviz fetches quarterly us-gaap metrics from SEC EDGAR company
facts, expands a lone symbol into its Finnhub sector peer group, and
renders comparison charts as self-contained HTML files.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "configs/filingviz.yaml", "path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLineCmd(),
		newAreaCmd(),
		newPieCmd(),
		newScatterCmd(),
		newHistCmd(),
		newPeersCmd(),
		newSeriesCmd(),
		newVersionCmd(),
	)

	return root
}

// app holds the wired components a command needs.
type app struct {
	logger     *slog.Logger
	cfg        *config.Config
	companies  *catalog.Companies
	industries *catalog.Industries
	finnhub    *finnhub.Client
	fetcher    *metric.Fetcher
	service    *compare.Service
}

func setup() (*app, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	// Tables and chart paths go to stdout, diagnostics to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	companies, err := catalog.LoadCompanies(cfg.Catalogs.CompanyTickers)
	if err != nil {
		return nil, fmt.Errorf("load company catalog: %w", err)
	}
	industries, err := catalog.LoadIndustries(cfg.Catalogs.Industries)
	if err != nil {
		return nil, fmt.Errorf("load industry catalog: %w", err)
	}

	logger.Debug("catalogs loaded",
		"companies", companies.Len(),
		"industries", industries.Len(),
	)

	edgarClient := edgar.NewClient(
		cfg.EDGAR.BaseURL,
		cfg.EDGAR.UserAgent,
		edgar.WithTimeout(cfg.EDGAR.Timeout),
		edgar.WithLogger(logger),
	)
	finnhubClient := finnhub.NewClient(
		cfg.Finnhub.BaseURL,
		cfg.Finnhub.APIKey,
		finnhub.WithTimeout(cfg.Finnhub.Timeout),
		finnhub.WithLogger(logger),
	)

	fetcher := metric.NewFetcher(companies, edgarClient, logger)

	outDir := cfg.Charts.OutputDir
	if outputDir != "" {
		outDir = outputDir
	}
	viewer := chart.NewViewer(outDir,
		chart.WithOpen(cfg.Charts.Open && !noOpen),
		chart.WithLogger(logger),
	)

	return &app{
		logger:     logger,
		cfg:        cfg,
		companies:  companies,
		industries: industries,
		finnhub:    finnhubClient,
		fetcher:    fetcher,
		service:    compare.New(fetcher, finnhubClient, industries, viewer, logger),
	}, nil
}

func newLineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line <symbol>...",
		Short: "Chart a metric's quarterly history as one line per company",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.service.Line(cmd.Context(), metricName, upperAll(args))
		},
	}
	addMetricFlag(cmd)
	addChartFlags(cmd)
	return cmd
}

func newAreaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area <symbol>...",
		Short: "Chart a metric's quarterly history as stacked areas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.service.Area(cmd.Context(), metricName, upperAll(args))
		},
	}
	addMetricFlag(cmd)
	addChartFlags(cmd)
	return cmd
}

func newPieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pie <symbol>...",
		Short: "Chart each company's latest value as a share of the group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.service.Pie(cmd.Context(), metricName, upperAll(args))
		},
	}
	addMetricFlag(cmd)
	addChartFlags(cmd)
	return cmd
}

func newScatterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scatter <symbol>...",
		Short: "Chart one metric against another, one point per company",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.service.Scatter(cmd.Context(), xMetric, yMetric, upperAll(args))
		},
	}
	cmd.Flags().StringVar(&xMetric, "x-metric", "Revenues", "us-gaap metric for the x axis")
	cmd.Flags().StringVar(&yMetric, "y-metric", defaultMetric, "us-gaap metric for the y axis")
	addChartFlags(cmd)
	return cmd
}

func newHistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hist <industry>...",
		Short: "Chart a metric's distribution across whole industries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return a.service.Histogram(cmd.Context(), metricName, args, bins)
		},
	}
	addMetricFlag(cmd)
	addChartFlags(cmd)
	cmd.Flags().IntVar(&bins, "bins", chart.DefaultBins, "number of histogram bins")
	return cmd
}

func newPeersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers <symbol>",
		Short: "List a company's peer group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}

			g := finnhub.Grouping(grouping)
			if !g.Valid() {
				return fmt.Errorf("invalid grouping %q (want sector, industry, or subIndustry)", grouping)
			}

			symbol := strings.ToUpper(args[0])
			peers, err := a.finnhub.Peers(cmd.Context(), symbol, g)
			if err != nil {
				return err
			}

			renderPeers(peers, a.companies)
			return nil
		},
	}
	cmd.Flags().StringVar(&grouping, "grouping", string(finnhub.GroupingSector), "peer grouping: sector, industry, or subIndustry")
	return cmd
}

func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series <symbol>",
		Short: "Print a company's quarterly metric series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}

			series, err := a.fetcher.Fetch(cmd.Context(), strings.ToUpper(args[0]), metricName)
			if err != nil {
				return err
			}

			renderSeries(series)
			return nil
		},
	}
	addMetricFlag(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("filingviz", version.String())
		},
	}
}

func addMetricFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&metricName, "metric", defaultMetric, "us-gaap metric to chart")
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputDir, "out", "", "directory for rendered charts (default from config)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not launch a browser for the chart")
}

func upperAll(symbols []string) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

// renderPeers prints the peer list with each symbol's CIK where the
// local catalog knows it.
func renderPeers(peers []string, companies *catalog.Companies) {
	tw := newTable()
	tw.AppendHeader(table.Row{"SYMBOL", "CIK"})
	for _, symbol := range peers {
		cik, err := companies.Resolve(symbol)
		if err != nil {
			cik = "-"
		}
		tw.AppendRow(table.Row{symbol, cik})
	}
	tw.Render()
}

func renderSeries(series model.Series) {
	tw := newTable()
	tw.SetTitle(fmt.Sprintf("%s %s (%s)", series.Symbol, series.Metric, series.Unit))
	tw.AppendHeader(table.Row{"PERIOD END", "VALUE"})
	for _, p := range series.Points {
		tw.AppendRow(table.Row{p.End, p.Value})
	}
	tw.Render()
}
