package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("debug hidden by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(false, &buf)
		log.Debug("hidden")
		log.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		New(true, &buf).WithField("commit", "abc123").Debug("resolved")

		assert.Contains(t, buf.String(), "resolved")
		assert.Contains(t, buf.String(), "commit=abc123")
	})
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))

	log := Discard()
	assert.Same(t, log, OrDiscard(log))
}
