// Package notices contains the domain model and contracts for NEC4
// contractual notices: early warnings and compensation events.
package notices
