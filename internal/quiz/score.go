package quiz

import (
	"errors"
	"fmt"
)

// Category is one of four coarse preference buckets.
type Category int

const (
	CategoryDrama Category = iota // 로맨스/드라마
	CategoryAction
	CategoryFantasy // SF/판타지
	CategoryComedy

	categoryCount = 4
)

// Answers holds the chosen option string for each of the five questions,
// in question order.
type Answers [5]string

// Distribution counts how many answers voted for each category.
type Distribution [categoryCount]int

// ErrInvalidAnswer is returned when an answer is not one of its question's
// options. The UI only ever submits values it presented, so hitting this is
// a caller bug, not user input to tolerate.
var ErrInvalidAnswer = errors.New("answer is not an option of its question")

// Score tallies the five answers into a category distribution and picks the
// winning category. Ties break to the lowest category index.
func Score(answers Answers) (Distribution, Category, error) {
	var dist Distribution
	for i, answer := range answers {
		idx, err := optionIndex(answer, questions[i].Options)
		if err != nil {
			return Distribution{}, 0, fmt.Errorf("question %d: %w", questions[i].ID, err)
		}
		dist[idx]++
	}

	winner := Category(0)
	for cat := 1; cat < categoryCount; cat++ {
		if dist[cat] > dist[winner] {
			winner = Category(cat)
		}
	}
	return dist, winner, nil
}

func optionIndex(answer string, options []string) (int, error) {
	for i, opt := range options {
		if opt == answer {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, answer)
}
