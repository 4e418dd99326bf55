package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/YannikAckermann/Vintage-Store/cart"
	"github.com/YannikAckermann/Vintage-Store/models"
)

// syncScheduler runs callbacks immediately, making the payment delay
// elapse inline.
func syncScheduler(_ time.Duration, f func()) { f() }

// holdScheduler captures callbacks so tests can observe the processing
// window before releasing them.
type holdScheduler struct {
	pending []func()
}

func (h *holdScheduler) schedule(_ time.Duration, f func()) {
	h.pending = append(h.pending, f)
}

func (h *holdScheduler) release() {
	for _, f := range h.pending {
		f()
	}
	h.pending = nil
}

type nullStorage struct{}

func (nullStorage) Load(string) ([]byte, error) { return nil, nil }
func (nullStorage) Save(string, []byte) error   { return nil }

func testContact() Contact {
	return Contact{
		FirstName:  "Anna",
		LastName:   "Keller",
		Email:      "anna.keller@example.ch",
		Phone:      "+41 79 555 12 34",
		Address:    "Bahnhofstrasse 12",
		City:       "Zürich",
		PostalCode: "8001",
		Canton:     "ZH",
	}
}

func stockedCart(t *testing.T) *cart.Store {
	t.Helper()
	s := cart.NewStore("test", nullStorage{}, nil)
	if err := s.AddItem(models.Product{ID: 10, Name: "A", Price: "Fr. 10.00"}, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.AddItem(models.Product{ID: 11, Name: "B", Price: "Fr. 5.50"}, 1); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAdvanceWalksStepsInOrder(t *testing.T) {
	store := stockedCart(t)
	var done []Summary
	m := NewMachine(store, Config{
		Schedule:   syncScheduler,
		OnComplete: func(s Summary) { done = append(done, s) },
	})

	if got := m.Step(); got != StepCart {
		t.Fatalf("start step = %s, want %s", got, StepCart)
	}

	if err := m.Advance(); err != nil {
		t.Fatalf("advance from cart: %v", err)
	}
	if got := m.Step(); got != StepInformation {
		t.Fatalf("step = %s, want %s", got, StepInformation)
	}

	if err := m.SetContact(testContact()); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(); err != nil {
		t.Fatalf("advance from information: %v", err)
	}
	if got := m.Step(); got != StepShipping {
		t.Fatalf("step = %s, want %s", got, StepShipping)
	}

	if err := m.Advance(); err != nil {
		t.Fatalf("advance from shipping: %v", err)
	}
	if got := m.Step(); got != StepPayment {
		t.Fatalf("step = %s, want %s", got, StepPayment)
	}

	if err := m.SelectPayment(PaymentTwint, nil); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := m.Step(); got != StepConfirmation {
		t.Fatalf("step after submit = %s, want %s", got, StepConfirmation)
	}
	if len(done) != 1 {
		t.Fatalf("completion callback ran %d times, want 1", len(done))
	}
	if store.TotalItems() != 0 {
		t.Error("cart should be cleared after confirmation")
	}
}

func TestAdvanceRejectsEmptyCart(t *testing.T) {
	store := cart.NewStore("test", nullStorage{}, nil)
	m := NewMachine(store, Config{Schedule: syncScheduler})

	if err := m.Advance(); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("advance with empty cart = %v, want ErrEmptyCart", err)
	}
	if got := m.Step(); got != StepCart {
		t.Errorf("step moved to %s on failed advance", got)
	}
}

func TestAdvanceRequiresCompleteContact(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})
	if err := m.Advance(); err != nil {
		t.Fatal(err)
	}

	partial := testContact()
	partial.Email = ""
	if err := m.SetContact(partial); err != nil {
		t.Fatal(err)
	}

	err := m.Advance()
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("advance with partial contact = %v, want FieldError", err)
	}
	if fieldErr.Field != "email" {
		t.Errorf("missing field = %q, want email", fieldErr.Field)
	}
	if got := m.Step(); got != StepInformation {
		t.Errorf("step moved to %s on failed advance", got)
	}
}

func TestSubmitRequiresPaymentMethod(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})
	if err := m.SetContact(testContact()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := m.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if got := m.Step(); got != StepPayment {
		t.Fatalf("step = %s, want %s", got, StepPayment)
	}

	if err := m.Advance(); !errors.Is(err, ErrNoPaymentMethod) {
		t.Errorf("submit without method = %v, want ErrNoPaymentMethod", err)
	}
}

func TestProcessingBlocksEverything(t *testing.T) {
	sched := &holdScheduler{}
	m := NewMachine(stockedCart(t), Config{Schedule: sched.schedule})
	if err := m.SetContact(testContact()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := m.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.SelectPayment(PaymentPostFinance, nil); err != nil {
		t.Fatal(err)
	}
	if err := m.Advance(); err != nil {
		t.Fatal(err)
	}

	if !m.Processing() {
		t.Fatal("expected processing flag during the delay")
	}
	if err := m.Advance(); !errors.Is(err, ErrProcessing) {
		t.Errorf("advance while processing = %v, want ErrProcessing", err)
	}
	if err := m.Back(); !errors.Is(err, ErrProcessing) {
		t.Errorf("back while processing = %v, want ErrProcessing", err)
	}
	if err := m.SetContact(testContact()); !errors.Is(err, ErrProcessing) {
		t.Errorf("set contact while processing = %v, want ErrProcessing", err)
	}
	if err := m.SelectShipping(ShippingExpress); !errors.Is(err, ErrProcessing) {
		t.Errorf("select shipping while processing = %v, want ErrProcessing", err)
	}

	sched.release()
	if m.Processing() {
		t.Error("processing flag should clear once the delay elapses")
	}
	if got := m.Step(); got != StepConfirmation {
		t.Errorf("step after release = %s, want %s", got, StepConfirmation)
	}
}

func TestConfirmationIsTerminal(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})
	if err := m.SetContact(testContact()); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectPayment(PaymentCard, &CardDetails{Name: "Anna Keller"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := m.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Advance(); !errors.Is(err, ErrOrderComplete) {
		t.Errorf("advance at confirmation = %v, want ErrOrderComplete", err)
	}
	if err := m.Back(); !errors.Is(err, ErrOrderComplete) {
		t.Errorf("back at confirmation = %v, want ErrOrderComplete", err)
	}
	if err := m.SetContact(testContact()); !errors.Is(err, ErrOrderComplete) {
		t.Errorf("set contact at confirmation = %v, want ErrOrderComplete", err)
	}
}

func TestBackRetreatsOneStep(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})

	if err := m.Back(); !errors.Is(err, ErrAtFirstStep) {
		t.Errorf("back at cart = %v, want ErrAtFirstStep", err)
	}

	if err := m.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := m.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if got := m.Step(); got != StepCart {
		t.Errorf("step after back = %s, want %s", got, StepCart)
	}
}

func TestTotalFollowsShippingSelection(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})

	// Subtotal Fr. 25.50, standard pre-selected.
	if got := m.Total(); got != "Fr. 33.40" {
		t.Errorf("total with standard = %q, want Fr. 33.40", got)
	}
	if err := m.SelectShipping(ShippingExpress); err != nil {
		t.Fatal(err)
	}
	if got := m.Total(); got != "Fr. 38.40" {
		t.Errorf("total with express = %q, want Fr. 38.40", got)
	}
	if err := m.SelectShipping(ShippingPriority); err != nil {
		t.Fatal(err)
	}
	if got := m.Total(); got != "Fr. 44.40" {
		t.Errorf("total with priority = %q, want Fr. 44.40", got)
	}
}

func TestSummaryCapturesOrderAtSubmit(t *testing.T) {
	store := stockedCart(t)
	var got Summary
	m := NewMachine(store, Config{
		Schedule:   syncScheduler,
		OnComplete: func(s Summary) { got = s },
	})
	contact := testContact()
	if err := m.SetContact(contact); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectShipping(ShippingExpress); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectPayment(PaymentTwint, nil); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := m.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if len(got.Items) != 2 {
		t.Fatalf("summary has %d items, want 2", len(got.Items))
	}
	if got.Contact != contact {
		t.Errorf("summary contact = %+v", got.Contact)
	}
	if got.ShippingMethod != ShippingExpress {
		t.Errorf("summary shipping = %s", got.ShippingMethod)
	}
	if got.PaymentMethod != PaymentTwint {
		t.Errorf("summary payment = %s", got.PaymentMethod)
	}
	if got.Subtotal != "Fr. 25.50" {
		t.Errorf("summary subtotal = %q", got.Subtotal)
	}
	if got.ShippingCost != "Fr. 12.90" {
		t.Errorf("summary shipping cost = %q", got.ShippingCost)
	}
	if got.Total != "Fr. 38.40" {
		t.Errorf("summary total = %q", got.Total)
	}
}

func TestSelectRejectsUnknownMethods(t *testing.T) {
	m := NewMachine(stockedCart(t), Config{Schedule: syncScheduler})
	if err := m.SelectShipping(ShippingMethod("drone")); !errors.Is(err, ErrUnknownShippingMethod) {
		t.Errorf("unknown shipping = %v", err)
	}
	if err := m.SelectPayment(PaymentMethod("cash"), nil); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Errorf("unknown payment = %v", err)
	}
}

func TestParseMethods(t *testing.T) {
	if got, err := ParseShippingMethod("Express"); err != nil || got != ShippingExpress {
		t.Errorf("ParseShippingMethod(Express) = %s, %v", got, err)
	}
	if _, err := ParseShippingMethod("pigeon"); !errors.Is(err, ErrUnknownShippingMethod) {
		t.Errorf("ParseShippingMethod(pigeon) = %v", err)
	}
	if got, err := ParsePaymentMethod("TWINT"); err != nil || got != PaymentTwint {
		t.Errorf("ParsePaymentMethod(TWINT) = %s, %v", got, err)
	}
	if _, err := ParsePaymentMethod("iou"); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Errorf("ParsePaymentMethod(iou) = %v", err)
	}
}

func TestManagerResetDiscardsIdleMachine(t *testing.T) {
	sched := &holdScheduler{}
	mgr := NewManager(0, sched.schedule, nil)
	store := stockedCart(t)

	first := mgr.Get("session-1", store)
	if err := first.Advance(); err != nil {
		t.Fatal(err)
	}

	mgr.ScheduleReset("session-1")
	sched.release()

	second := mgr.Get("session-1", store)
	if second == first {
		t.Error("expected a fresh machine after reset")
	}
	if got := second.Step(); got != StepCart {
		t.Errorf("fresh machine step = %s, want %s", got, StepCart)
	}
}

func TestManagerResetSparesProcessingMachine(t *testing.T) {
	sched := &holdScheduler{}
	mgr := NewManager(time.Second, sched.schedule, nil)
	store := stockedCart(t)

	m := mgr.Get("session-1", store)
	if err := m.SetContact(testContact()); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectPayment(PaymentTwint, nil); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := m.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if !m.Processing() {
		t.Fatal("expected machine to be processing")
	}

	// Only run the reset callback; the payment delay stays pending.
	mgr.ScheduleReset("session-1")
	reset := sched.pending[len(sched.pending)-1]
	reset()

	if got := mgr.Get("session-1", store); got != m {
		t.Error("reset must not discard a machine mid-payment")
	}
}
