// Package eventbus implements the in-process publish-subscribe dispatcher
// that routes domain events (email classified, early warning raised,
// compensation event raised) to handlers which store notifications and fan
// them out to connected clients.
package eventbus
