package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// KeyValues collects "Key:Value" pairs separated by commas. It implements
// the flag.Value interface and uses the same syntax caarlos0/env uses for
// map fields, so a filter reads identically in a flag and in the environment.
type KeyValues map[string]string

// List collects comma-separated values. It implements the flag.Value interface.
type List []string

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-url PatientVault API root URL
//	-culture locale code sent with every call
//	-u/-username PatientVault user name
//	-p/-password PatientVault password
//	-allow-blank-credentials let blank credentials reach the API
//	-wait block on a terminal read before exiting
//	-log-level minimum log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retries transport retries per call
//	-journal sqlite run journal path
//	-patient-filter patient filters "Key:Value,Key2:Value2"
//	-activity-filter activity filters "Key:Value,Key2:Value2"
//	-content-format activity content format (json or html)
//	-sections CCDA sections to fetch, comma separated
//	-a fake vault listen address in format [host]:[port]
//	-sign-key fake vault session signing key
//	-session-duration fake vault session lifetime
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var fakeVaultAddress NetAddress
	var patientFilters, activityFilters KeyValues
	var sections List
	var apiRootURL, culture, username, password, logLevel string
	var journalDSN, contentFormat, signKey, jsonConfigPath string
	var allowBlank, waitOnExit bool
	var requestTimeout, sessionDuration time.Duration
	var retryCount int

	fs := flag.NewFlagSet("patientvault", flag.ContinueOnError)
	fs.StringVar(&apiRootURL, "url", "", "PatientVault API root URL")
	fs.StringVar(&culture, "culture", "", "Culture code (e.g. en)")
	fs.StringVar(&username, "u", "", "User name")
	fs.StringVar(&username, "username", "", "User name (alias)")
	fs.StringVar(&password, "p", "", "Password")
	fs.StringVar(&password, "password", "", "Password (alias)")
	fs.BoolVar(&allowBlank, "allow-blank-credentials", false, "Send blank credentials to the API")
	fs.BoolVar(&waitOnExit, "wait", false, "Wait for Enter before exiting")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&retryCount, "retries", 0, "Transport retries per call")
	fs.StringVar(&journalDSN, "journal", "", "SQLite run journal path")
	fs.Var(&patientFilters, "patient-filter", "Patient filters Key:Value,Key2:Value2")
	fs.Var(&activityFilters, "activity-filter", "Activity filters Key:Value,Key2:Value2")
	fs.StringVar(&contentFormat, "content-format", "", "Activity content format (json, html)")
	fs.Var(&sections, "sections", "CCDA sections, comma separated (empty means all)")
	fs.Var(&fakeVaultAddress, "a", "Fake vault net address host:port")
	fs.StringVar(&signKey, "sign-key", "", "Fake vault session signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Fake vault session duration (e.g., 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Culture:               culture,
			Username:              username,
			Password:              password,
			AllowBlankCredentials: allowBlank,
			WaitOnExit:            waitOnExit,
			LogLevel:              logLevel,
		},
		Adapter: Adapter{
			APIRootURL:     apiRootURL,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Storage: Storage{
			Journal: Journal{
				DSN: journalDSN,
			},
		},
		Workflow: Workflow{
			PatientFilters:  patientFilters,
			ActivityFilters: activityFilters,
			ContentFormat:   contentFormat,
			Sections:        sections,
		},
		FakeVault: FakeVault{
			HTTPAddress:     fakeVaultAddress.String(),
			SignKey:         signKey,
			SessionDuration: sessionDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String renders the pairs sorted by key.
func (kv *KeyValues) String() string {
	if kv == nil || len(*kv) == 0 {
		return ""
	}

	keys := make([]string, 0, len(*kv))
	for k := range *kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+(*kv)[k])
	}
	return strings.Join(pairs, ",")
}

// Set parses "Key:Value,Key2:Value2". A value may be blank ("LastName:")
// and may itself contain colons. Repeated flags accumulate.
func (kv *KeyValues) Set(s string) error {
	if *kv == nil {
		*kv = make(KeyValues)
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("need filter in a form `Key:Value`, got %q", pair)
		}
		(*kv)[key] = strings.TrimSpace(value)
	}
	return nil
}

func (l *List) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends every non-blank comma-separated item.
func (l *List) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}
