// Package logging provides structured logging for wlaninfo.
//
// This package wraps a global zap logger. It is silent unless a level is
// requested, either with the -log-level flag or the WLANINFO_LOG_LEVEL
// environment variable, so that normal runs print nothing but the
// requested document.
//
// # Log Levels
//
//   - Debug: Every external command run by the iw backend, with redacted
//     arguments, exit code and stderr
//   - Info: Scans and associations
//   - Warn: Recoverable problems such as an unreadable config file
//   - Error: Failures reported to the user
//
// # Output
//
// Logs go to stderr in console format. stdout carries only the rendered
// tty or JSON document and stays safe to pipe:
//
//	WLANINFO_LOG_LEVEL=debug wlaninfo -action scan -format json | jq .SSID
//
// # Usage
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("scan complete", zap.Int("networks", n))
package logging
