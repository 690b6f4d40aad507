// Package config provides the startup configuration lookup for debugsink.
//
// Two keys control the debug sink:
//
//	debug:
//	  enabled: true              # case-insensitive "true" enables the sink
//	  logfile: /tmp/debug.log    # optional, used only when enabled
//
// # Sources
//
// Values are resolved by Viper, lowest precedence first:
//
//   - built-in defaults (disabled, no log file)
//   - a config file named config.yaml or config.toml, searched in the
//     current directory and then ~/.config/debugsink/
//   - environment variables DEBUGSINK_DEBUG_ENABLED and DEBUGSINK_DEBUG_LOGFILE
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	closer := sink.Initialize(cfg.Settings())
//
// A missing config file is not an error when searching the default
// locations; it is an error when an explicit path is given.
package config
