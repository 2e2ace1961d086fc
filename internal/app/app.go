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

// Package app wires configuration into the errno rendering stack for the
// command line tool.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/errno"
	"dirpx.dev/errno/codeset"
	"dirpx.dev/errno/decode"
	"dirpx.dev/errno/internal/config"
	"dirpx.dev/errno/sysmsg"
)

// Env is everything a command needs, built once from the configuration.
type Env struct {
	Config   config.Config
	Log      *zap.Logger
	Resolver codeset.Resolver
	Decoder  *decode.Decoder
	Renderer *errno.Renderer
}

// Setup selects the locale and builds the rendering stack for cfg.
//
// A configured locale the C library rejects is a usage error. Platforms
// without C locale support only log it, since their messages do not depend
// on it.
func Setup(cfg config.Config, log *zap.Logger) (*Env, error) {
	if log == nil {
		log = zap.NewNop()
	}
	decode.SetLogger(log.Named("decode"))

	name, err := sysmsg.SetLocale(cfg.Locale)
	switch {
	case errors.Is(err, sysmsg.ErrLocaleUnsupported):
		log.Debug("locale selection unsupported", zap.String("locale", cfg.Locale))
	case err != nil && cfg.Locale == "":
		// C programs stay in the "C" locale when the environment names a
		// locale that is not installed.
		envLocale := sysmsg.LocaleFromEnv(nil)
		log.Warn("environment locale not available",
			zap.String("locale", envLocale),
			zap.String("codeset", sysmsg.CodesetFromLocale(envLocale).String()),
			zap.Error(err),
		)
	case err != nil:
		return nil, Wrap(ExitUsage, err)
	default:
		log.Debug("locale selected", zap.String("requested", cfg.Locale), zap.String("locale", name))
	}

	resolver, err := codeset.NewResolver(codeset.WithAliases(cfg.Aliases))
	if err != nil {
		return nil, Wrapf(ExitUsage, err, "aliases")
	}
	cs, err := codeset.Parse(cfg.Codeset)
	if err != nil {
		return nil, Wrapf(ExitUsage, err, "codeset")
	}

	dec := decode.New(
		decode.WithBufferSize(cfg.BufferSize),
		decode.WithResolver(resolver),
		decode.WithLogger(log.Named("decode")),
	)
	r := errno.NewRenderer(
		errno.WithDecoderOption(dec),
		errno.WithCodesetOption(cs),
	)
	return &Env{
		Config:   cfg,
		Log:      log,
		Resolver: resolver,
		Decoder:  dec,
		Renderer: r,
	}, nil
}

// NewLogger builds the stderr logger: development output when verbose,
// otherwise production JSON at level.
func NewLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// Report is the JSON form of one rendered code.
type Report struct {
	Code    int32  `json:"code"`
	Hex     string `json:"hex"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// Describe renders e into a Report.
func (env *Env) Describe(e errno.Errno) Report {
	return Report{
		Code:    int32(e),
		Hex:     e.Hex(),
		Name:    e.Name(),
		Message: env.Renderer.Message(e),
	}
}

// Mode names the path the decoder takes for cs: "fast-path", "convert" or
// "escape".
func (env *Env) Mode(cs codeset.Codeset) string {
	if cs.IsCanonical() {
		return "fast-path"
	}
	if _, err := env.Resolver.Resolve(cs); err != nil {
		return "escape"
	}
	return "convert"
}
