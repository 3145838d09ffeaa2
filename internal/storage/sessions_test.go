package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oliverwhitby/elevenplus-bot/internal/service"
)

func TestSessionStorage(t *testing.T) {
	s := NewSessionStorage()

	assert.Nil(t, s.Get(1))

	session := &service.Session{}
	s.Store(1, session)
	assert.Same(t, session, s.Get(1))
	assert.Nil(t, s.Get(2))

	replacement := &service.Session{}
	s.Store(1, replacement)
	assert.Same(t, replacement, s.Get(1))

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}
