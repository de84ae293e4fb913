// Package mail contains the domain model and contracts for classified inbound
// correspondence. Classification itself happens upstream; this module stores
// the result and feeds the event bus.
package mail
