// Package render writes records in the supported output formats and prints
// the changes between a derived record and its base.
package render
