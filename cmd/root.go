package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/giantswarm/mmaictl/internal/aggregate"
	"github.com/giantswarm/mmaictl/internal/api"
	"github.com/giantswarm/mmaictl/internal/config"
	"github.com/giantswarm/mmaictl/internal/instrumentation"
	"github.com/giantswarm/mmaictl/internal/logging"
	"github.com/giantswarm/mmaictl/internal/resource"
)

// skipSetup marks commands that run without config, logger or API client.
const skipSetup = "mmaictl/skip-setup"

// app holds the state shared by the commands of one invocation. Flag values
// are bound during parsing; everything else is built by setup.
type app struct {
	configPath string
	apiURL     string
	token      string
	verbose    bool
	quiet      bool

	cfg        *config.Config
	logger     *slog.Logger
	provider   *instrumentation.Provider
	client     *api.Client
	service    *resource.Service
	aggregator *aggregate.Aggregator
}

// rootCmd represents the base command. rootApp carries its shared state.
var rootCmd, rootApp = newRootCmd()

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "mmaictl",
		Short: "Command-line client for the MMAI platform",
		Long: `mmaictl manages MMAI platform resources through the control-plane REST API:
clusters, departments, node groups, nodes, projects, workloads and billing.

List and get commands fan out over every cluster unless --cluster selects one,
and render as text, dot paths, JSON, YAML or a table.`,
		// Errors are printed once by Execute.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (env "+config.EnvConfig+", default $HOME/.config/mmaictl/config.yaml)")
	flags.StringVar(&a.apiURL, "api-url", "", "base URL of the control-plane API (env "+config.EnvAPIURL+", default "+config.DefaultAPIURL+")")
	flags.StringVar(&a.token, "token", "", "bearer token (env "+config.EnvToken+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only print command output and errors")

	root.AddCommand(newClusterCmd(a))
	for _, kind := range []resource.Kind{resource.Department, resource.NodeGroup, resource.Node, resource.Project} {
		root.AddCommand(newKindCmd(a, kind))
	}
	root.AddCommand(newWorkloadCmd(a))
	root.AddCommand(newBillingCmd(a))
	root.AddCommand(newTopologyCmd(a))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSelfUpdateCmd())

	return root, a
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command and exits 1 on error. SIGINT and SIGTERM
// cancel in-flight requests.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mmaictl version %s\n" .Version}}`)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, rootCmd, rootApp, os.Stderr)
	cancel()
	if code != 0 {
		os.Exit(code)
	}
}

// run executes root and returns the process exit code. Errors are logged
// and printed to stderr as "Error: <message>".
func run(ctx context.Context, root *cobra.Command, a *app, stderr io.Writer) int {
	c, err := root.ExecuteContextC(ctx)
	a.close()
	if err != nil {
		if a.logger != nil && c != nil {
			a.logger.Debug("command failed", logging.Operation(c.CommandPath()), logging.Err(err))
		}
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// setup resolves the configuration and builds the logger, instrumentation
// and API client for the command about to run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetup] == "true" {
		return nil
	}

	path, required := a.configPath, a.configPath != ""
	if path == "" {
		if env := os.Getenv(config.EnvConfig); env != "" {
			path, required = env, true
		} else {
			path = config.DefaultPath()
		}
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = a.apiURL
	}
	if flags.Changed("token") {
		cfg.Token = a.token
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = a.quiet
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), logging.LevelFor(cfg.Verbose, cfg.Quiet))

	icfg := instrumentation.DefaultConfig()
	icfg.ServiceVersion = cmd.Root().Version
	provider, err := instrumentation.NewProvider(cmd.Context(), icfg)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	a.provider = provider
	if provider.Enabled() {
		a.logger.Debug("OpenTelemetry instrumentation enabled",
			slog.String("metrics", icfg.MetricsExporter),
			slog.String("tracing", icfg.TracingExporter))
	}

	a.client = api.New(cfg.APIURL,
		api.WithToken(cfg.Token),
		api.WithLogger(a.logger),
		api.WithMetrics(provider.Metrics()),
		api.WithUserAgent("mmaictl/"+cmd.Root().Version))
	a.service = resource.NewService(a.client, a.logger)
	a.aggregator = aggregate.New(a.service, a.logger, provider.Metrics())
	return nil
}

// close flushes instrumentation. It is safe to call when setup never ran.
func (a *app) close() {
	if a.provider == nil {
		return
	}
	if err := a.provider.Shutdown(context.Background()); err != nil {
		a.logger.Warn("instrumentation shutdown failed", logging.Err(err))
	}
	a.provider = nil
}
