// Package checkout drives the linear confirmation flow layered on top of a
// session's cart: cart -> information -> shipping -> payment ->
// confirmation. The machine validates its own step preconditions instead of
// trusting callers to gate transitions.
package checkout

type Step string

const (
	StepCart         Step = "cart"
	StepInformation  Step = "information"
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var stepOrder = []Step{StepCart, StepInformation, StepShipping, StepPayment, StepConfirmation}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return 0
}

func (s Step) next() Step {
	i := s.index()
	if i >= len(stepOrder)-1 {
		return s
	}
	return stepOrder[i+1]
}

func (s Step) prev() Step {
	i := s.index()
	if i <= 0 {
		return s
	}
	return stepOrder[i-1]
}
