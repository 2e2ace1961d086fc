/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errno"
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/internal/app"
	"dirpx.dev/errno/internal/config"
	"dirpx.dev/errno/sysmsg"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flags holds the global command line flags.
type flags struct {
	cfgPath    string
	locale     string
	codeset    string
	bufferSize int
	verbose    bool
	json       bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		f   flags
		env *app.Env
	)

	rootCmd := &cobra.Command{
		Use:           "errno [code...]",
		Short:         "errno prints operating system error messages in the current locale",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
# Message for a code, by number, hex value or name
errno 13
errno 0x0d EACCES

# Machine-readable output
errno --json ENOENT

# Messages of another locale
errno --locale ja_JP.EUC-JP 13

# Run raw bytes through the decoder
printf 'abc\377' | errno decode --codeset EUC-JP
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			var err error
			env, err = setup(cmd, f)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			codes := make([]errno.Errno, 0, len(args))
			for _, a := range args {
				e, err := errno.Parse(a)
				if err != nil {
					return app.Wrap(app.ExitUsage, err)
				}
				codes = append(codes, e)
			}
			return printCodes(stdout, env, codes)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.cfgPath, "config", "", "Path to .errno.yaml (or set "+config.EnvVar+")")
	pf.StringVar(&f.locale, "locale", "", "C locale to select before reading messages")
	pf.StringVar(&f.codeset, "codeset", "", "Treat messages as encoded in this codeset")
	pf.IntVar(&f.bufferSize, "buffer-size", 0, "Decoder working buffer size in bytes")
	pf.BoolVar(&f.verbose, "verbose", false, "Enable verbose output")
	pf.BoolVar(&f.json, "json", false, "Print JSON objects instead of text")

	rootCmd.AddCommand(newLastCmd(stdout, &env))
	rootCmd.AddCommand(newDecodeCmd(stdin, stdout, &env))
	rootCmd.AddCommand(newCodesetCmd(stdout, &env))
	rootCmd.AddCommand(newVersionCmd(stdout))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if env != nil {
		_ = env.Log.Sync()
	}
	if err != nil {
		code := app.ExitIO
		var ae *app.Error
		if errors.As(err, &ae) {
			code = ae.ExitCode()
		}
		fmt.Fprintln(stderr, "error:", err)
		return code
	}
	return app.ExitOK
}

// setup loads the configuration, applies flag overrides and builds the
// rendering stack.
func setup(cmd *cobra.Command, f flags) (*app.Env, error) {
	path, explicit := config.FindConfigPath(f.cfgPath)
	load := config.LoadOptional
	if explicit {
		load = config.Load
	}
	cfg, err := load(path)
	if err != nil {
		return nil, app.Wrap(app.ExitUsage, err)
	}

	pf := cmd.Flags()
	if pf.Changed("locale") {
		cfg.Locale = f.locale
	}
	if pf.Changed("codeset") {
		cfg.Codeset = f.codeset
	}
	if pf.Changed("buffer-size") {
		cfg.BufferSize = f.bufferSize
	}
	if pf.Changed("json") {
		cfg.Format = config.FormatText
		if f.json {
			cfg.Format = config.FormatJSON
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, app.Wrap(app.ExitUsage, err)
	}

	log, err := app.NewLogger(f.verbose, cfg.Log.Level)
	if err != nil {
		return nil, app.Wrap(app.ExitUsage, err)
	}
	return app.Setup(cfg, log)
}

func printCodes(w io.Writer, env *app.Env, codes []errno.Errno) error {
	if env.Config.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, e := range codes {
			if err := enc.Encode(env.Describe(e)); err != nil {
				return app.Wrap(app.ExitIO, err)
			}
		}
		return nil
	}
	for _, e := range codes {
		if err := env.Renderer.Render(w, e); err != nil {
			return app.Wrap(app.ExitIO, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return app.Wrap(app.ExitIO, err)
		}
	}
	return nil
}

func newLastCmd(stdout io.Writer, env **app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the message for the process's current last-error code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCodes(stdout, *env, []errno.Errno{errno.Last()})
		},
	}
}

func newDecodeCmd(stdin io.Reader, stdout io.Writer, env **app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode raw message bytes from a file or stdin to UTF-8",
		Long: strings.TrimSpace(`
Decode reads raw bytes and writes them as UTF-8, escaping every byte that is
invalid in the source codeset as \xNN. The codeset is taken from --codeset,
or from the current locale when the flag is absent.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 1 && args[0] != "-" {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(stdin)
			}
			if err != nil {
				return app.Wrap(app.ExitIO, err)
			}

			cs := codeset.Codeset((*env).Config.Codeset)
			if cs == codeset.Empty {
				cs = sysmsg.CurrentCodeset()
			}
			(*env).Log.Debug("decoding input",
				zap.String("codeset", cs.String()),
				zap.String("mode", (*env).Mode(cs)),
				zap.Int("bytes", len(raw)),
			)
			if err := (*env).Decoder.Decode(stdout, raw, cs); err != nil {
				return app.Wrap(app.ExitIO, err)
			}
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return app.Wrap(app.ExitIO, err)
			}
			return nil
		},
	}
}

func newCodesetCmd(stdout io.Writer, env **app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "codeset",
		Short: "Print the codeset of OS messages and how it is decoded",
		Long: strings.TrimSpace(`
Codeset prints three tab-separated columns: the codeset messages are decoded
from, the decoding mode (fast-path, convert or escape) and the locale named
by LC_ALL, LC_MESSAGES or LANG ("-" when none is set).`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := sysmsg.CurrentCodeset()
			if over := codeset.Codeset((*env).Config.Codeset); over != codeset.Empty {
				cs = over
			}
			locale := sysmsg.LocaleFromEnv(nil)
			if locale == "" {
				locale = "-"
			}
			if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", cs, (*env).Mode(cs), locale); err != nil {
				return app.Wrap(app.ExitIO, err)
			}
			return nil
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(stdout, "errno", version)
			return err
		},
	}
}
