package config

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyConfigFile   = "config"
	KeyTrustedHosts = "trusted-hosts"
	KeyScrambleKey  = "scramble-key"
	KeyPropFile     = "prop-file"
	KeyTokenPrefix  = "token-prefix"
	KeyAppVersion   = "app-version"
	KeyLogLevel     = "log-level"
	KeyLogDir       = "log-dir"
	KeyLogRotation  = "log-rotation"

	EnvPrefix = "NATIVESEC"
)

// Config holds the settings shared by the CLI and anything else that constructs a bridge outside the mobile host.
// Empty values mean "use the package default".
type Config struct {
	TrustedHosts []string
	ScrambleKey  string
	PropFile     string
	TokenPrefix  string
	AppVersion   string
	LogLevel     string
	LogDir       string
	LogRotation  uint
}

// RegisterFlags adds the configuration flags to the given set.
func RegisterFlags(flags *flag.FlagSet) {
	flags.String(KeyConfigFile, "", "Path to a YAML, TOML, or JSON config file.")
	flags.StringSlice(KeyTrustedHosts, nil, "Host names allowed by connection validation. Prefix with '*.' to allow subdomains.")
	flags.String(KeyScrambleKey, "", "Override the built-in scramble key.")
	flags.String(KeyPropFile, "", "Read device properties from this prop file instead of getprop.")
	flags.String(KeyTokenPrefix, "", "Override the security token prefix.")
	flags.String(KeyAppVersion, "", "Version sent in the X-App-Version header by guarded requests.")
	flags.String(KeyLogLevel, "info", "Log level: debug, info, warn, or error.")
	flags.String(KeyLogDir, "", "Also write logs to rotated files in this directory.")
	flags.Uint(KeyLogRotation, 7, "Number of rotated log files to keep.")
}

// Load resolves configuration with the precedence flag > environment > config file > default.
// Environment variables use the NATIVESEC_ prefix with dashes replaced by underscores, e.g. NATIVESEC_LOG_LEVEL.
func Load(flags *flag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogRotation, 7)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfigFile); len(file) > 0 {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", file, err)
		}
	}

	cfg := &Config{
		TrustedHosts: v.GetStringSlice(KeyTrustedHosts),
		ScrambleKey:  v.GetString(KeyScrambleKey),
		PropFile:     v.GetString(KeyPropFile),
		TokenPrefix:  v.GetString(KeyTokenPrefix),
		AppVersion:   v.GetString(KeyAppVersion),
		LogLevel:     v.GetString(KeyLogLevel),
		LogDir:       v.GetString(KeyLogDir),
		LogRotation:  v.GetUint(KeyLogRotation),
	}
	return cfg, nil
}
