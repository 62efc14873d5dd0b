// Package report serializes close approaches. It writes the CSV row format
// and the JSON document format, reads both back, and renders terminal
// previews.
package report
