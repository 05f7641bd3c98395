// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters):
//
//   - Loader: fetches the three content sources and builds the Snapshot
//   - Conversation: the topic selection state machine
//   - Typewriter: paced, cancelable character reveals
//   - SettingsService: typed access to the config store
package services
