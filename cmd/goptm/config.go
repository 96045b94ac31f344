/*
 * config.go, part of goptm.
 *
 * Copyright 2025 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envPrefix      = "GOPTM"
	configBaseName = "goptm"

	rulesKey     = "library.rules"
	templatesKey = "library.templates"

	logFileKey       = "log.file"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"

	relaxGmxKey        = "relax.gmx"
	relaxForceFieldKey = "relax.force_field"
	relaxWaterKey      = "relax.water"

	defaultRules      = "library.json"
	defaultTemplates  = "templates"
	defaultLogLevel   = "info"
	defaultLogMaxSize = 10
	defaultLogBackups = 3
	defaultLogMaxAge  = 28
	defaultGmx        = "gmx"
	defaultForceField = "amber99sb-ildn"
	defaultWater      = "tip3p"
)

func initConfig(cfgFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(rulesKey, defaultRules)
	viper.SetDefault(templatesKey, defaultTemplates)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(relaxGmxKey, defaultGmx)
	viper.SetDefault(relaxForceFieldKey, defaultForceField)
	viper.SetDefault(relaxWaterKey, defaultWater)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return viper.ReadInConfig()
	}
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func parseSlogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "", "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}
	return slog.LevelInfo
}

//configureLogger sets slog's default logger: text on stderr, or JSON to
//a rotating file when log.file is configured.
func configureLogger() {
	level := parseSlogLevel(viper.GetString(logLevelKey))
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if file := viper.GetString(logFileKey); file != "" {
		w := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   true,
		}
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
