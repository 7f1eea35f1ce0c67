package session

import (
	"encoding/json"
	"math"
)

// Stats is the running score of a session
type Stats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Total     int `json:"total"`
}

// Accuracy returns the percent of correct answers, rounded. It is 0 until something is answered.
func (s Stats) Accuracy() int {
	if s.Total == 0 {
		return 0
	}

	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}

// Record adds one graded answer
func (s *Stats) Record(correct bool) {
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}

	s.Total++
}

// MarshalJSON adds the accuracy
func (s Stats) MarshalJSON() ([]byte, error) {
	type stats Stats
	return json.Marshal(struct {
		stats
		Accuracy int `json:"accuracy"`
	}{
		stats:    stats(s),
		Accuracy: s.Accuracy(),
	})
}
