package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpgo/fso-calculator/internal/api"
	"github.com/rpgo/fso-calculator/internal/calculation"
	"github.com/rpgo/fso-calculator/internal/config"
	"github.com/rpgo/fso-calculator/internal/domain"
	"github.com/rpgo/fso-calculator/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Environment variables read by serve
const (
	envPort      = "PORT"
	envReference = "FSOCALC_REFERENCE"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fsocalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "fsocalc",
	Short: "Foreign Service benefits calculator CLI",
	Long:  "Estimates Foreign Service retirement annuities, severance pay and post-separation health insurance costs",
}

// calcOptions are the flags shared by calculate and validate
type calcOptions struct {
	Format    string
	Reference string
	Policy    string
	AsOf      string
	OutputDir string
	Debug     bool
}

func calcOptionsFromFlags(cmd *cobra.Command) calcOptions {
	var opts calcOptions
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Reference, _ = cmd.Flags().GetString("reference")
	opts.Policy, _ = cmd.Flags().GetString("policy")
	opts.AsOf, _ = cmd.Flags().GetString("as-of")
	opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	return opts
}

// newEngine loads reference data and applies the policy and as-of overrides
func newEngine(opts calcOptions) (*calculation.Engine, error) {
	ref, err := config.LoadReferenceFile(opts.Reference)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine(ref)
	if opts.Policy != "" {
		policy, err := domain.PolicyByName(opts.Policy)
		if err != nil {
			return nil, err
		}
		if err := engine.SetPolicy(policy); err != nil {
			return nil, err
		}
	}
	if opts.AsOf != "" {
		asOf, err := time.Parse("2006-01-02", opts.AsOf)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of date %q: %w", opts.AsOf, err)
		}
		engine.Now = func() time.Time { return asOf }
	}
	if opts.Debug {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

func runCalculate(inputFile string, opts calcOptions, w io.Writer) error {
	engine, err := newEngine(opts)
	if err != nil {
		return err
	}
	asOf := engine.AsOf()
	in, err := config.LoadInputFile(inputFile, asOf)
	if err != nil {
		return err
	}
	result, err := engine.CalculateAt(in, asOf)
	if err != nil {
		return err
	}

	if opts.OutputDir != "" {
		paths, err := output.GenerateReport(result, opts.Format, opts.OutputDir)
		for _, p := range paths {
			fmt.Fprintf(w, "Report written to %s\n", p)
		}
		return err
	}

	f, err := output.GetFormatterByName(opts.Format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runValidate(inputFile string, opts calcOptions, w io.Writer) error {
	engine, err := newEngine(opts)
	if err != nil {
		return err
	}
	in, err := config.LoadInputFile(inputFile, engine.AsOf())
	if err != nil {
		return err
	}
	if _, err := calculation.NewHealthComparator(engine.Reference).Compare(in.HealthPlanID, in.CoverageTier, in.HomeState); err != nil {
		return fmt.Errorf("input file %s: %w", inputFile, err)
	}
	fmt.Fprintf(w, "Input file %s is valid (reference data %s, %s policy)\n", inputFile, engine.Reference.Version, engine.Policy.Name)
	return nil
}

func runReference(outFile string, w io.Writer) error {
	data := config.DefaultReferenceYAML()
	if outFile == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write reference file %s: %w", outFile, err)
	}
	fmt.Fprintf(w, "Reference data written to %s\n", outFile)
	return nil
}

// serveAddr resolves the listen address from the flag, then PORT
func serveAddr(flagAddr string) string {
	if flagAddr != "" {
		return flagAddr
	}
	if port := os.Getenv(envPort); port != "" {
		return ":" + port
	}
	return ":8080"
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate retirement, severance and health insurance estimates",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCalculate(args[0], calcOptionsFromFlags(cmd), cmd.OutOrStdout()); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file against the reference data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0], calcOptionsFromFlags(cmd), cmd.OutOrStdout()); err != nil {
			log.Fatal(err)
		}
	},
}

var referenceCmd = &cobra.Command{
	Use:   "reference [output-file]",
	Short: "Write the built-in salary, health plan and policy tables as YAML",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var out string
		if len(args) == 1 {
			out = args[0]
		}
		if err := runReference(out, cmd.OutOrStdout()); err != nil {
			log.Fatal(err)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		opts := calcOptionsFromFlags(cmd)
		if opts.Reference == "" {
			opts.Reference = os.Getenv(envReference)
		}
		engine, err := newEngine(opts)
		if err != nil {
			log.Fatal(err)
		}

		handler := api.NewHandler(engine)
		handler.SetLogger(simpleCLILogger{})
		addr, _ := cmd.Flags().GetString("addr")
		server := api.NewServer(serveAddr(addr), handler)

		go func() {
			log.Printf("Server starting on %s (reference %s, %s policy)", server.Addr, engine.Reference.Version, engine.Policy.Name)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Server failed: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
		log.Println("Server stopped")
	},
}

func addCalcFlags(cmd *cobra.Command) {
	cmd.Flags().String("reference", "", "Path to reference data YAML (default: built-in tables)")
	cmd.Flags().String("policy", "", "Retirement policy preset: current or legacy (default: from reference data)")
	cmd.Flags().String("as-of", "", "Evaluate as of this date, YYYY-MM-DD (default: today)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
}

func init() {
	addCalcFlags(calculateCmd)
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, console-verbose, csv, detailed-csv, html, json; all with --output-dir)")
	calculateCmd.Flags().String("output-dir", "", "Write a timestamped report file to this directory instead of stdout")

	addCalcFlags(validateCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default: :$PORT or :8080)")
	serveCmd.Flags().String("reference", "", "Path to reference data YAML (default: $FSOCALC_REFERENCE or built-in tables)")
	serveCmd.Flags().String("policy", "", "Retirement policy preset: current or legacy")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
