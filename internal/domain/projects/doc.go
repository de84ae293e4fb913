// Package projects contains the domain model and contracts for construction
// contract projects. A project is the root record that notices, procurement
// records and site reports attach to.
package projects
