// Package format names the output formats of replay reports.
package format
