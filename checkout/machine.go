package checkout

import (
	"sync"
	"time"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/currency"
	"github.com/YannikAckermann/Vintage-Store/models"
)

// Contact is the information-step form. Every field is required before the
// flow may advance past the information step.
type Contact struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Canton     string `json:"canton"`
}

func (c Contact) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"first_name", c.FirstName},
		{"last_name", c.LastName},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"postal_code", c.PostalCode},
		{"canton", c.Canton},
	}
	for _, f := range fields {
		if f.value == "" {
			return &FieldError{Field: f.name}
		}
	}
	return nil
}

// CardDetails are the sub-fields revealed by the generic card payment
// method. They are captured but not required before submission, matching
// the storefront's behavior.
type CardDetails struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Summary is handed to the completion callback exactly once per order,
// carrying everything needed to record it.
type Summary struct {
	Items          []models.CartLineItem
	Contact        Contact
	ShippingMethod ShippingMethod
	PaymentMethod  PaymentMethod
	Subtotal       string
	ShippingCost   string
	Total          string
}

// Config wires a machine's collaborators. Schedule defaults to
// time.AfterFunc; tests substitute a synchronous scheduler.
type Config struct {
	ProcessingDelay time.Duration
	Schedule        func(time.Duration, func())
	OnComplete      func(Summary)
}

// Machine walks one checkout attempt through the step sequence. It reads
// items and subtotal from the cart store and clears the store when the
// simulated payment completes.
type Machine struct {
	mu         sync.Mutex
	store      *cart.Store
	step       Step
	contact    Contact
	shipping   ShippingMethod
	payment    PaymentMethod
	card       *CardDetails
	processing bool
	delay      time.Duration
	schedule   func(time.Duration, func())
	complete   func(Summary)
}

func NewMachine(store *cart.Store, cfg Config) *Machine {
	schedule := cfg.Schedule
	if schedule == nil {
		schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Machine{
		store: store,
		step:  StepCart,
		// A default shipping method is pre-selected so the shipping
		// step can always advance.
		shipping: ShippingStandard,
		delay:    cfg.ProcessingDelay,
		schedule: schedule,
		complete: cfg.OnComplete,
	}
}

// Advance moves one step forward after validating the current step's
// preconditions. From the payment step it starts the simulated payment;
// the transition to confirmation happens when the delay elapses.
func (m *Machine) Advance() error {
	m.mu.Lock()

	// Submission releases the lock before scheduling; finish re-locks.
	if m.step == StepPayment {
		if m.processing {
			m.mu.Unlock()
			return ErrProcessing
		}
		if m.payment == "" {
			m.mu.Unlock()
			return ErrNoPaymentMethod
		}
		m.processing = true
		summary := m.summaryLocked()
		m.mu.Unlock()

		m.schedule(m.delay, func() {
			m.finish(summary)
		})
		return nil
	}

	defer m.mu.Unlock()
	switch m.step {
	case StepCart:
		if m.store.TotalItems() == 0 {
			return ErrEmptyCart
		}
	case StepInformation:
		if err := m.contact.validate(); err != nil {
			return err
		}
	case StepShipping:
		// Always allowed: a default method is pre-selected.
	case StepConfirmation:
		return ErrOrderComplete
	}

	m.step = m.step.next()
	return nil
}

// Back retreats exactly one step. Confirmation is terminal and the cart
// step has nothing before it.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.step == StepConfirmation:
		return ErrOrderComplete
	case m.step == StepCart:
		return ErrAtFirstStep
	case m.processing:
		return ErrProcessing
	}
	m.step = m.step.prev()
	return nil
}

// summaryLocked captures the order at submit time; the cart may be cleared
// before the completion callback runs.
func (m *Machine) summaryLocked() Summary {
	return Summary{
		Items:          m.store.Items(),
		Contact:        m.contact,
		ShippingMethod: m.shipping,
		PaymentMethod:  m.payment,
		Subtotal:       m.store.Subtotal(),
		ShippingCost:   currency.Format(m.shipping.Surcharge()),
		Total:          m.totalLocked(),
	}
}

// finish runs once when the simulated payment elapses: confirmation is
// entered, the cart is cleared and the order is recorded.
func (m *Machine) finish(summary Summary) {
	m.mu.Lock()
	m.processing = false
	m.step = StepConfirmation
	m.mu.Unlock()

	m.store.Clear()
	if m.complete != nil {
		m.complete(summary)
	}
}

// SetContact stores the information-step form. Fields are validated when
// advancing, not here, so partial saves are fine.
func (m *Machine) SetContact(c Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processing {
		return ErrProcessing
	}
	if m.step == StepConfirmation {
		return ErrOrderComplete
	}
	m.contact = c
	return nil
}

// SelectShipping switches the shipping method; the total follows the new
// surcharge immediately.
func (m *Machine) SelectShipping(method ShippingMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processing {
		return ErrProcessing
	}
	if m.step == StepConfirmation {
		return ErrOrderComplete
	}
	if _, ok := shippingMethods[method]; !ok {
		return ErrUnknownShippingMethod
	}
	m.shipping = method
	return nil
}

// SelectPayment picks the payment method. Card details accompany the card
// method but their completeness is not enforced.
func (m *Machine) SelectPayment(method PaymentMethod, card *CardDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processing {
		return ErrProcessing
	}
	if m.step == StepConfirmation {
		return ErrOrderComplete
	}
	switch method {
	case PaymentTwint, PaymentPostFinance, PaymentCard:
	default:
		return ErrUnknownPaymentMethod
	}
	m.payment = method
	if method == PaymentCard {
		m.card = card
	} else {
		m.card = nil
	}
	return nil
}

func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

func (m *Machine) Processing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processing
}

func (m *Machine) Contact() Contact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contact
}

func (m *Machine) Shipping() ShippingMethod {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shipping
}

func (m *Machine) Payment() PaymentMethod {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payment
}

// Total is subtotal plus the selected method's flat surcharge, in display
// form.
func (m *Machine) Total() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalLocked()
}

func (m *Machine) totalLocked() string {
	return currency.Format(m.store.SubtotalValue().Add(m.shipping.Surcharge()))
}
