// Package schedule runs gitstreak on a cron schedule for the daemon command
// and the OS service.
//
// Schedules use the standard 5-field syntax or descriptors like @daily.
// Activations never overlap, and a panicking job is logged and recovered.
package schedule
