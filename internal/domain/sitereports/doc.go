// Package sitereports contains the domain model and contracts for daily site
// diary entries.
package sitereports
