// Package paths resolves the on-disk locations debugsink uses.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux the configuration file lives under ~/.config/debugsink and the
// default debug log under ~/.local/state/debugsink:
//
//	paths.ConfigFile()     // ~/.config/debugsink/config.yaml
//	paths.DefaultLogFile() // ~/.local/state/debugsink/debug.log
package paths
