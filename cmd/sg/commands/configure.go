package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/surveygizmo/internal/constants"
)

// ConfigureOptions holds the credentials written to the config file.
type ConfigureOptions struct {
	Endpoint   string `yaml:"endpoint,omitempty"`
	APIVersion string `yaml:"api-version,omitempty"`
	AuthMethod string `yaml:"auth-method,omitempty"`
	Username   string `yaml:"username,omitempty"`
	Password   string `yaml:"password,omitempty"`
	MD5Hash    string `yaml:"md5-hash,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var opts ConfigureOptions

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Write credentials to the config file",
		Long: `Write credentials and defaults to $HOME/.sg/config.yml so they do not
need to be passed as flags. The password is prompted interactively when
not supplied, so it never lands in shell history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureCommand(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "API endpoint URL")
	cmd.Flags().StringVar(&opts.APIVersion, "api-version", "", "API version segment")
	cmd.Flags().StringVar(&opts.AuthMethod, "auth-method", "user:pass", "authentication method")
	cmd.Flags().StringVar(&opts.Username, "username", "", "account username")
	cmd.Flags().StringVar(&opts.MD5Hash, "md5-hash", "", "MD5 hex digest of the account password")

	return cmd
}

func runConfigureCommand(opts ConfigureOptions) error {
	if opts.Username == "" {
		fmt.Print("Username: ")

		if _, err := fmt.Scanln(&opts.Username); err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
	}

	if opts.Password == "" && opts.MD5Hash == "" {
		fmt.Print("Password: ")

		raw, err := term.ReadPassword(int(os.Stdin.Fd()))

		fmt.Println()

		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		opts.Password = string(raw)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".sg")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	raw, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, raw, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", configPath)

	return nil
}
