// Package files resolves command-line input arguments into file paths.
package files
