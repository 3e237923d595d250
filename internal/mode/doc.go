// Package mode implements the modal input state machine.
//
// Input arrives one byte at a time with no look-ahead. The active mode
// interprets each byte and emits an Action for the editor to apply; mode
// transitions are edge-triggered by specific bytes (i, :, escape, line
// breaks) rather than polled. Command mode owns the pending command-line
// text as mode-local state, so a populated command buffer cannot exist
// outside command mode.
package mode
