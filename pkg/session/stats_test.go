package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Accuracy(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  int
	}{
		{"nothing answered", Stats{}, 0},
		{"all correct", Stats{Correct: 3, Total: 3}, 100},
		{"two of three", Stats{Correct: 2, Incorrect: 1, Total: 3}, 67},
		{"one of three", Stats{Correct: 1, Incorrect: 2, Total: 3}, 33},
		{"half", Stats{Correct: 1, Incorrect: 1, Total: 2}, 50},
		{"none correct", Stats{Incorrect: 4, Total: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.Accuracy())
		})
	}
}

func TestStats_Record(t *testing.T) {
	a := assert.New(t)

	var s Stats
	s.Record(true)
	s.Record(false)
	s.Record(true)

	a.Equal(Stats{Correct: 2, Incorrect: 1, Total: 3}, s)
}

func TestStats_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Stats{Correct: 2, Incorrect: 1, Total: 3})
	a.NoError(err)
	a.JSONEq(`{"correct":2,"incorrect":1,"total":3,"accuracy":67}`, string(b))

	var s Stats
	a.NoError(json.Unmarshal(b, &s))
	a.Equal(Stats{Correct: 2, Incorrect: 1, Total: 3}, s)
}
