package gradebook

// scoreRecord maps assignment -> score and remembers insertion order.
// Overwriting a score keeps its position.
type scoreRecord struct {
	assignments []string
	scores      map[string]float64
}

func newScoreRecord() *scoreRecord {
	return &scoreRecord{scores: make(map[string]float64)}
}

func (r *scoreRecord) len() int { return len(r.assignments) }

func (r *scoreRecord) get(assignment string) (float64, bool) {
	score, ok := r.scores[assignment]
	return score, ok
}

func (r *scoreRecord) set(assignment string, score float64) {
	if _, ok := r.scores[assignment]; !ok {
		r.assignments = append(r.assignments, assignment)
	}
	r.scores[assignment] = score
}

func (r *scoreRecord) remove(assignment string) bool {
	if _, ok := r.scores[assignment]; !ok {
		return false
	}
	delete(r.scores, assignment)
	for i, a := range r.assignments {
		if a == assignment {
			r.assignments = append(r.assignments[:i], r.assignments[i+1:]...)
			break
		}
	}
	return true
}

// average returns false when the record is empty.
func (r *scoreRecord) average() (float64, bool) {
	if len(r.assignments) == 0 {
		return 0, false
	}
	var total float64
	for _, a := range r.assignments {
		total += r.scores[a]
	}
	return total / float64(len(r.assignments)), true
}

// lowest returns the first assignment holding the minimum score.
func (r *scoreRecord) lowest() (string, bool) {
	if len(r.assignments) == 0 {
		return "", false
	}
	lowest := r.assignments[0]
	for _, a := range r.assignments[1:] {
		if r.scores[a] < r.scores[lowest] {
			lowest = a
		}
	}
	return lowest, true
}

func (r *scoreRecord) list() []Score {
	scores := make([]Score, 0, len(r.assignments))
	for _, a := range r.assignments {
		scores = append(scores, Score{Assignment: a, Value: r.scores[a]})
	}
	return scores
}
