package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/surveygizmo/cmd/sg/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sg",
	Short: "SurveyGizmo REST API CLI",
	Long: `A command-line interface for the SurveyGizmo REST API.

Query surveys, responses, and campaigns, apply result filters, and inspect
the exact requests the client would issue.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.sg/config.yml)")
	rootCmd.PersistentFlags().String("endpoint", "", "API endpoint URL (default is the public instance)")
	rootCmd.PersistentFlags().String("api-version", "", "API version segment (default \"head\")")
	rootCmd.PersistentFlags().String("auth-method", "", "authentication method (user:pass, user:md5, oauth)")
	rootCmd.PersistentFlags().StringP("username", "u", "", "account username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "account password")
	rootCmd.PersistentFlags().String("md5-hash", "", "MD5 hex digest of the account password")
	rootCmd.PersistentFlags().String("consumer-key", "", "OAuth1 consumer key")
	rootCmd.PersistentFlags().String("consumer-secret", "", "OAuth1 consumer secret")
	rootCmd.PersistentFlags().String("access-token", "", "OAuth1 access token")
	rootCmd.PersistentFlags().String("access-token-secret", "", "OAuth1 access token secret")
	rootCmd.PersistentFlags().String("response-type", "", "response wire format (json, pson, xml, debug)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("api-version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("auth-method", rootCmd.PersistentFlags().Lookup("auth-method"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("md5-hash", rootCmd.PersistentFlags().Lookup("md5-hash"))
	_ = viper.BindPFlag("consumer-key", rootCmd.PersistentFlags().Lookup("consumer-key"))
	_ = viper.BindPFlag("consumer-secret", rootCmd.PersistentFlags().Lookup("consumer-secret"))
	_ = viper.BindPFlag("access-token", rootCmd.PersistentFlags().Lookup("access-token"))
	_ = viper.BindPFlag("access-token-secret", rootCmd.PersistentFlags().Lookup("access-token-secret"))
	_ = viper.BindPFlag("response-type", rootCmd.PersistentFlags().Lookup("response-type"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewSurveysCommand())
	rootCmd.AddCommand(commands.NewResponsesCommand())
	rootCmd.AddCommand(commands.NewCampaignsCommand())
	rootCmd.AddCommand(commands.NewCallCommand())
	rootCmd.AddCommand(commands.NewConfigureCommand())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".sg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yml")
		}
	}

	viper.SetEnvPrefix("SG")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
