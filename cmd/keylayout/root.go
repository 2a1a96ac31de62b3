package keylayout

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/keylayout/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const exampleConfigPath = "./.keylayout.toml"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "keylayout",
	Short: "Show your keyboard and the keys you press, live",
	Long: `KeyLayout draws a keyboard and lights up the keys as they are pressed.
Keys come from the window itself, from stdin or from the USB console of ZMK keyboards.
Middle click toggles color adjusting: pick a channel with R, G or B and scroll to change it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, verbose)

		return bindFlags(cmd, args)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keylayout.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "If provided, debug output will be shown")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".keylayout" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".keylayout")
	}

	viper.SetEnvPrefix("keylayout")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()

			return
		}

		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		os.Exit(1)
	}
}

func createExampleConfig() {
	exampleConfig := `# layout = "info.json"
# unit = 60
settings = "keylayout-settings.toml"
fps = 60
port = 3000
`

	if _, err := os.Stat(exampleConfigPath); err == nil {
		return
	}

	if err := os.WriteFile(exampleConfigPath, []byte(exampleConfig), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating example config file: %s\n", err)

		return
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var errs []error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares case-insensitively, so only the hyphens need to go.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if f.Changed || !viper.IsSet(configName) {
			return
		}

		val := viper.Get(configName)

		if sv, ok := f.Value.(pflag.SliceValue); ok {
			if err := sv.Replace(viper.GetStringSlice(configName)); err != nil {
				errs = append(errs, fmt.Errorf("could not set flag %s: %w", f.Name, err))
			}
		} else if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			errs = append(errs, fmt.Errorf("could not set flag %s: %w", f.Name, err))
		}

		slog.Debug("Flag set from config", "flag", f.Name, "value", val)
	})

	return errors.Join(errs...)
}
