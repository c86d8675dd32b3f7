// Package commands defines the pushwoosh CLI.
//
// Commands
//
//   - push         Send a notification to all or selected devices
//   - register     Register a device push token
//   - unregister   Remove a device push token
//
// Credentials come from the YAML files given with --config, from PUSHWOOSH_*
// environment variables, or from a .env file given with --env-file.
package commands
