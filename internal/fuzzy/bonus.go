package fuzzy

import "unicode"

// inputState classifies the previously scanned character; it decides
// the bonus for the character that follows it.
type inputState int

const (
	stateBeginning inputState = iota
	stateInWord
	stateInSpace
	stateInSpecial
)

const (
	scoreBeginning   = 20
	scoreBoundary    = 10
	scoreMatch       = 3
	scoreConsecutive = 3
)

func isAlphanumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c)
}

func stateFromChar(c rune) inputState {
	switch {
	case isAlphanumeric(c):
		return stateInWord
	case unicode.IsSpace(c):
		return stateInSpace
	default:
		return stateInSpecial
	}
}

// bonusAt scores one matched character. distance is the codepoint gap
// to the previously matched query character; 1 means adjacent and earns
// the consecutive bonus. Callers pass 0 for the first query character.
func bonusAt(state inputState, c rune, distance int) int {
	var score int
	switch state {
	case stateBeginning:
		score = scoreBeginning
	case stateInSpace:
		score = scoreBoundary
	case stateInSpecial:
		if isAlphanumeric(c) {
			score = scoreBoundary
		} else {
			score = scoreMatch
		}
	case stateInWord:
		if !isAlphanumeric(c) {
			score = scoreBoundary
		} else {
			score = scoreMatch
		}
	}
	if distance == 1 {
		score += scoreConsecutive
	}
	return score
}
