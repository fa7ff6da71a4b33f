// Package logutil has small helpers around the standard logger.
package logutil

import (
	"io"
	"io/ioutil"
	"log"
)

// Discard is a Logger that ignores all loggings.
var Discard = log.New(ioutil.Discard, "", 0)

// New returns a logger writing to w with the given prefix.
func New(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.Lmicroseconds)
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard
	}

	return l
}
