package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
)

// NetAddress is a host:port pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a config holding only the flags that were set.
//
// Flags:
//
//	-a              listen address host:port
//	-d              database DSN
//	-c, -config     JSON config file path
//	-token-sign-key token signing key
//	-token-issuer   token issuer
//	-token-duration token lifetime (e.g. 1h)
//	-api-key        API key exchanged for tokens
//	-cookie-key     hex encoded 32 byte cookie key
//	-log-level      zerolog level name
//	-request-timeout per-request timeout (e.g. 30s)
//	-max-body-size  request body limit in bytes, negative for none
//	-gzip           enable response compression
//	-static-dir     directory served under /static
//	-server-url     client: notes server base URL
//	-subject        client: token subject
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
	)

	fs := flag.NewFlagSet("go-finchers", flag.ContinueOnError)
	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.APIKey, "api-key", "", "API key")
	fs.StringVar(&cfg.App.CookieKey, "cookie-key", "", "Hex encoded 32 byte cookie key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&cfg.Server.MaxBodySize, "max-body-size", 0, "Request body limit in bytes, negative for none")
	fs.BoolVar(&cfg.Server.Gzip, "gzip", false, "Enable gzip responses")
	fs.StringVar(&cfg.Server.StaticDir, "static-dir", "", "Static files directory")
	fs.StringVar(&cfg.Client.ServerURL, "server-url", "", "Notes server URL")
	fs.StringVar(&cfg.Client.Subject, "subject", "", "Token subject")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = address.String()
	cfg.Args = fs.Args()
	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
