package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		action  string
		params  []string
	}{
		{"start", buildQuizStartCallback(), actionQuiz, []string{quizStart}},
		{"answer", buildQuizAnswerCallback(7, 2), actionQuiz, []string{quizAnswer, "7", "2"}},
		{"next", buildQuizNextCallback(20), actionQuiz, []string{quizNext, "20"}},
		{"restart", buildQuizRestartCallback(), actionQuiz, []string{quizRestart}},
		{"progress", buildProgressCallback(), actionProgress, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := decodeCallback(tt.encoded)
			assert.Equal(t, tt.action, data.Action)
			if len(tt.params) == 0 {
				assert.Empty(t, data.Params)
			} else {
				assert.Equal(t, tt.params, data.Params)
			}
		})
	}
}

func TestParseAnswerParams(t *testing.T) {
	num, idx, ok := parseAnswerParams([]string{"3", "1"})
	assert.True(t, ok)
	assert.Equal(t, 3, num)
	assert.Equal(t, 1, idx)

	_, _, ok = parseAnswerParams([]string{"3"})
	assert.False(t, ok)

	_, _, ok = parseAnswerParams([]string{"x", "1"})
	assert.False(t, ok)
}
