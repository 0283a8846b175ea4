package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/web-data-gen/internal/config"
	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/logx"
	"github.com/sozercan/web-data-gen/internal/output"
	"github.com/sozercan/web-data-gen/internal/submit"
)

// NewRootCommand builds the command tree. Each call gets its own viper
// instance so commands can be exercised in isolation.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "webdatagen",
		Short: "Web Data Generator - request synthetic web analytics data",
		Long: `webdatagen collects the parameters of a web data generation request
and submits them to the generator API, trying each candidate endpoint in
order until one answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file path (default: ~/.config/webdatagen/config.yaml)")
	flags.String("origin", "", "Origin that relative endpoints resolve against")
	flags.StringSlice("endpoint", nil, "Candidate endpoint, repeatable, tried in order (default: built-in list)")
	flags.Bool("no-relay", false, "Skip the public CORS relay candidate")
	flags.Duration("timeout", 0, "Per-attempt timeout (0 waits indefinitely)")
	flags.String("user-agent", "", "User-Agent header sent with each attempt")
	flags.StringP("output", "o", "table", "Output format: table, json or yaml")
	flags.BoolP("verbose", "v", false, "Write the diagnostic log to stderr")
	flags.String("log-file", "", "Also write the diagnostic log to this rotating file")

	for _, name := range []string{"origin", "endpoint", "no-relay", "timeout", "user-agent", "output", "verbose", "log-file"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newSubmitCommand(v),
		newPayloadCommand(v),
		newEndpointsCommand(v),
		newServeCommand(),
	)
	return root
}

// Execute runs the root command
func Execute(version, commit, date string) error {
	root := NewRootCommand()
	root.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
	return root.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "webdatagen"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WEBDATAGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else if v.GetBool("verbose") {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// newLogger routes the diagnostic stream. Without --verbose or --log-file
// only warnings and errors reach stderr.
func newLogger(cmd *cobra.Command, v *viper.Viper) (*slog.Logger, func() error, error) {
	verbose := v.GetBool("verbose")
	logFile := v.GetString("log-file")
	if !verbose && logFile == "" {
		cfg := logx.DefaultConfig()
		cfg.Level = "warn"
		logger := logx.New(cmd.ErrOrStderr(), cfg).With("service", "webdatagen")
		return logger, func() error { return nil }, nil
	}

	cfg := logx.DefaultConfig()
	cfg.Level = "debug"
	switch {
	case verbose && logFile != "":
		cfg.Output = "stderr,file"
	case logFile != "":
		cfg.Output = "file"
	}
	cfg.FilePath = logFile

	logger, closer, err := logx.Init("webdatagen", cfg)
	if err != nil {
		return nil, nil, err
	}
	return logger, closer, nil
}

// newWorkflow builds the delivery client and candidate list from flags,
// config file and environment.
func newWorkflow(v *viper.Viper, logger *slog.Logger) (*submit.Workflow, error) {
	var opts []datagen.Option
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, datagen.WithTimeout(timeout))
	}
	if ua := v.GetString("user-agent"); ua != "" {
		opts = append(opts, datagen.WithUserAgent(ua))
	}

	client, err := datagen.NewClient(v.GetString("origin"), opts...)
	if err != nil {
		return nil, err
	}
	return submit.New(client, candidates(v), logger), nil
}

func candidates(v *viper.Viper) []string {
	cfg := config.DataGenConfig{
		Endpoints:    v.GetStringSlice("endpoint"),
		DisableRelay: v.GetBool("no-relay"),
	}
	return cfg.CandidateEndpoints()
}

func formatter(v *viper.Viper) (output.Formatter, output.Format, error) {
	format, err := output.ParseFormat(v.GetString("output"))
	if err != nil {
		return nil, "", err
	}
	return output.NewFormatter(format), format, nil
}

func writeOut(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
