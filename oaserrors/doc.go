// Package oaserrors: see errors.go for the full type catalog.
package oaserrors
