package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/golang-fips/openssl-conditional"
)

// VersionOverrideEnv selects the libcrypto to probe when --crypto is not set.
// On Linux the value is a soname suffix ("3" -> libcrypto.so.3).
const VersionOverrideEnv = "GO_OPENSSL_VERSION_OVERRIDE"

// knownVersions is a list of well-known libcrypto.so suffixes in decreasing version order.
//
// FreeBSD library version numbering does not directly align to the version of OpenSSL.
// Some distributions use 1.0.0 and others (such as Debian) 1.0.2 to refer to the same OpenSSL 1.0.2 version.
var knownVersions = [...]string{"3", "1.1.1", "1.1", "11", "111", "1.0.2", "1.0.0", "10"}

// ProbeOptions holds flags for the probe command.
type ProbeOptions struct {
	*RootOptions
	Crypto string
	SSL    string
	NoSSL  bool
}

type probeResult struct {
	Crypto      string   `json:"crypto" yaml:"crypto"`
	SSL         string   `json:"ssl,omitempty" yaml:"ssl,omitempty"`
	Version     string   `json:"version" yaml:"version"`
	VersionText string   `json:"versionText" yaml:"versionText"`
	Flavor      string   `json:"flavor" yaml:"flavor"`
	FIPS        bool     `json:"fips" yaml:"fips"`
	Enabled     []string `json:"enabled" yaml:"enabled"`
	Disabled    []string `json:"disabled" yaml:"disabled"`
	Excluded    []string `json:"excluded" yaml:"excluded"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProbeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Load an OpenSSL library and report which flags hold",
		Long: `Load libcrypto (and libssl) and evaluate every capability flag against it.

When --crypto is not given, $` + VersionOverrideEnv + ` is used, then a list of
well-known library names. When --ssl is not given, the libssl next to the
libcrypto is used if it can be loaded.

Example:
  opensslcond probe --crypto libcrypto.so.3
  ` + VersionOverrideEnv + `=1.1 opensslcond probe --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Crypto, "crypto", "", "libcrypto shared library to load")
	cmd.Flags().StringVar(&opts.SSL, "ssl", "", "libssl shared library to load (default: derived from --crypto)")
	cmd.Flags().BoolVar(&opts.NoSSL, "no-ssl", false, "do not load libssl")
	cmd.MarkFlagsMutuallyExclusive("ssl", "no-ssl")

	return cmd
}

func runProbe(opts *ProbeOptions, cmd *cobra.Command) error {
	crypto := opts.Crypto
	if crypto == "" {
		crypto = defaultCryptoFile()
	}
	sslFile := opts.SSL
	derived := false
	if sslFile == "" && !opts.NoSSL {
		sslFile = openssl.SSLFile(crypto)
		derived = sslFile != ""
	}

	slog.Debug("loading OpenSSL", "crypto", crypto, "ssl", sslFile)
	lib, err := openssl.Open(crypto, sslFile)
	var le *openssl.LoadError
	if derived && errors.As(err, &le) && le.File == sslFile {
		slog.Warn("libssl not loaded, flags probing it will be disabled", "ssl", sslFile, "error", le.Err)
		sslFile = ""
		lib, err = openssl.Open(crypto, "")
	}
	if err != nil {
		return WrapExitError(ExitFailure, "probe", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			slog.Error("error closing OpenSSL", "error", cerr)
		}
	}()
	slog.Debug("OpenSSL loaded", "version", lib.Version(), "flavor", lib.Flavor(), "text", lib.VersionText())

	b := lib.Bind()
	res := probeResult{
		Crypto:      crypto,
		SSL:         sslFile,
		Version:     lib.Version().String(),
		VersionText: lib.VersionText(),
		Flavor:      lib.Flavor().String(),
		FIPS:        lib.FIPS(),
		Enabled:     b.EnabledFlags(),
		Disabled:    b.DisabledFlags(),
		Excluded:    b.Excluded(),
	}
	slog.Debug("flags evaluated", "enabled", len(res.Enabled), "disabled", len(res.Disabled))

	out := writer{format: opts.Format, w: cmd.OutOrStdout()}
	if ok, err := out.structured(res); ok {
		return err
	}
	fmt.Fprintf(out.w, "%s (%s, FIPS %v)\n", res.VersionText, res.Flavor, res.FIPS)
	for _, f := range res.Enabled {
		fmt.Fprintf(out.w, "+ %s\n", f)
	}
	for _, f := range res.Disabled {
		fmt.Fprintf(out.w, "- %s\n", f)
	}
	return nil
}

// defaultCryptoFile returns the libcrypto to probe when none is given.
func defaultCryptoFile() string {
	if v := os.Getenv(VersionOverrideEnv); v != "" {
		if runtime.GOOS == "linux" {
			return "libcrypto.so." + v
		}
		return v
	}
	if runtime.GOOS == "windows" {
		return "libcrypto-3-x64.dll"
	}
	for _, v := range knownVersions {
		file := "libcrypto.so." + v
		if runtime.GOOS == "darwin" {
			file = "libcrypto." + v + ".dylib"
		}
		if ok, _ := openssl.CheckVersion(file); ok {
			return file
		}
	}
	return "libcrypto.so"
}
