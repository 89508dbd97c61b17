package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/markline-io/markline/internal/auth"
	"github.com/markline-io/markline/pkg/markline"
	"github.com/markline-io/markline/pkg/mlclient"
)

// Static errors for command validation.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or set it in the config file)")
	ErrNotLoggedIn         = errors.New("not logged in (run 'markline login' first)")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// configDir returns the CLI configuration directory, creating nothing.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".markline"), nil
}

// credentialsPath returns the location of the durable credential file. The
// three persisted values (token, user, uniqueId) are the CLI's entire
// durable session state.
func credentialsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "credentials.yml"), nil
}

// loadCredentialStore opens the credential store backing this CLI.
func loadCredentialStore() (*auth.CredentialStore, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}

	store, err := auth.NewCredentialStore(path)
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	return store, nil
}

// createClient builds an API client from flags, environment, config file,
// and stored credentials. The --token flag wins over the credential store.
func createClient(ctx context.Context) (markline.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	token := viper.GetString("token")

	if token == "" {
		store, err := loadCredentialStore()
		if err != nil {
			return nil, err
		}

		token = store.Token()
	}

	config := &markline.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	return mlclient.New(ctx, config)
}

// createAuthenticatedClient is createClient plus a presence-of-token check,
// for commands that are pointless without a session.
func createAuthenticatedClient(ctx context.Context) (markline.Client, error) {
	if viper.GetString("token") == "" {
		store, err := loadCredentialStore()
		if err != nil {
			return nil, err
		}

		if !store.IsAuthenticated() {
			return nil, ErrNotLoggedIn
		}
	}

	return createClient(ctx)
}

// renderEncoded writes v as indented JSON or YAML to stdout.
func renderEncoded(format string, v interface{}) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, format)
	}
}

// apiFailure converts a client error into the single user-facing message
// commands print, mirroring how every form in the UI aggregates errors.
func apiFailure(err error, defaultMessage string) error {
	return errors.New(markline.ErrorMessage(err, defaultMessage))
}

// stderrLogger is the minimal structured logger used with --verbose.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }
