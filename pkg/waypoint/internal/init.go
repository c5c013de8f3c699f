// Package internal contains the shared infrastructure of waypoint: logging
// sinks and levels. Types and functions in this package are not part of the
// public API.
package internal
