// Package audit keeps an append-only JSONL history of export runs.
package audit
