// Package config provides user configuration management for wlaninfo.
//
// This package manages a YAML configuration file holding default flag
// values, paths to the external Wi-Fi tools, and BSSID aliases. Command-line
// flags always override the file.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/wlaninfo/config.yaml or $HOME/.config/wlaninfo/config.yaml
//   - macOS: $HOME/.config/wlaninfo/config.yaml
//   - Windows: %LOCALAPPDATA%\wlaninfo\config.yaml
//
// A different file can be chosen with the -config flag.
//
// # Security
//
// IMPORTANT: This package NEVER stores Wi-Fi passwords. They are passed on
// the command line or typed into the interactive picker for each use.
//
// # Example
//
//	version: 1
//	preferences:
//	  format: json
//	  interface: wlan0
//	  backend: iw
//	  timestamp: true
//	iw:
//	  iw_path: /usr/sbin/iw
//	  timeout: 30s
//	aliases:
//	  home: "3c:37:86:aa:bb:01"
//
// # Usage Example
//
//	registry, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	bssid := registry.ResolveAlias(flagBSSID)
package config
