// Package models contains the GORM database models (infrastructure concern)
// and their conversions to and from the domain entities.
package models
