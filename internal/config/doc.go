// Package config loads vtestkit configuration.
//
// The configuration is stored in vtestkit.yaml at the project root and may
// be overridden by VTESTKIT_* environment variables, with dots in key names
// replaced by underscores (VTESTKIT_LOG_LEVEL=debug).
//
// # Configuration File Structure
//
//	check:
//	  fail_fast: false
//	output:
//	  color: auto      # auto, always, never
//	  pretty: false
//	log:
//	  level: info      # debug, info, warn, error
//	  format: text     # text, json
//	metrics:
//	  namespace: vtestkit
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Fail fast:", cfg.Check.FailFast)
package config
