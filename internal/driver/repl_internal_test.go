package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBracketStackScanComplete(t *testing.T) {
	var s bracketStack
	assert.Equal(t, complete, s.scan("(+ 1 2)"))
	assert.True(t, s.empty())
}

func TestBracketStackScanPendingAcrossLines(t *testing.T) {
	var s bracketStack
	assert.Equal(t, pending, s.scan("(+ 1"))
	assert.False(t, s.empty())
	assert.Equal(t, complete, s.scan(" 2)"))
}

func TestBracketStackScanMismatch(t *testing.T) {
	var s bracketStack
	assert.Equal(t, mismatch, s.scan("(1 2}"))
}

func TestBracketStackScanExtraCloser(t *testing.T) {
	var s bracketStack
	assert.Equal(t, mismatch, s.scan(")"))
}

func TestBracketStackScanNested(t *testing.T) {
	var s bracketStack
	assert.Equal(t, pending, s.scan("(a {b"))
	assert.Equal(t, complete, s.scan("c})"))
}
