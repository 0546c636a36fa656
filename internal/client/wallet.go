package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency     = "SOL"
	DefaultConnectDelay = 500 * time.Millisecond
)

var (
	ErrWalletNotConnected  = errors.New("wallet not connected")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// WalletState is a snapshot of the simulated wallet.
type WalletState struct {
	Connected bool
	Address   string
	Balance   decimal.Decimal
	Currency  string
}

func disconnectedWallet() WalletState {
	return WalletState{Balance: decimal.Zero, Currency: DefaultCurrency}
}

// WalletStore simulates a browser wallet: connecting waits a short delay and
// then yields a random address and balance. Nothing touches a chain.
type WalletStore struct {
	mu          sync.Mutex
	state       WalletState
	delay       time.Duration
	rng         *rand.Rand
	subscribers map[int]func(WalletState)
	nextSubID   int
}

type WalletOption func(*WalletStore)

// WithConnectDelay overrides the simulated connect latency.
func WithConnectDelay(d time.Duration) WalletOption {
	return func(w *WalletStore) { w.delay = d }
}

// WithRand makes generated addresses and balances reproducible.
func WithRand(r *rand.Rand) WalletOption {
	return func(w *WalletStore) { w.rng = r }
}

func NewWalletStore(opts ...WalletOption) *WalletStore {
	w := &WalletStore{
		state:       disconnectedWallet(),
		delay:       DefaultConnectDelay,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		subscribers: make(map[int]func(WalletState)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current snapshot.
func (w *WalletStore) State() WalletState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Connect waits for the configured delay and then connects with a random
// 0x-prefixed 40 hex digit address and a balance in [1.00, 9.99]. If ctx is
// done first the state is left unchanged and ctx.Err() is returned.
func (w *WalletStore) Connect(ctx context.Context) error {
	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	w.mu.Lock()
	w.state = WalletState{
		Connected: true,
		Address:   w.randomAddress(),
		Balance:   decimal.New(int64(w.rng.IntN(900)+100), -2),
		Currency:  DefaultCurrency,
	}
	w.mu.Unlock()

	w.notify()
	return nil
}

// Disconnect resets the wallet to its initial state.
func (w *WalletStore) Disconnect() {
	w.mu.Lock()
	w.state = disconnectedWallet()
	w.mu.Unlock()

	w.notify()
}

// CanAfford checks the wallet is connected and holds at least amount.
func (w *WalletStore) CanAfford(amount decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAffordLocked(amount)
}

// Debit deducts an entry fee from the local balance.
func (w *WalletStore) Debit(amount decimal.Decimal) error {
	w.mu.Lock()
	if err := w.canAffordLocked(amount); err != nil {
		w.mu.Unlock()
		return err
	}
	w.state.Balance = w.state.Balance.Sub(amount)
	w.mu.Unlock()

	w.notify()
	return nil
}

func (w *WalletStore) canAffordLocked(amount decimal.Decimal) error {
	if !w.state.Connected {
		return ErrWalletNotConnected
	}
	if w.state.Balance.LessThan(amount) {
		return fmt.Errorf("%w: have %s %s, need %s", ErrInsufficientBalance,
			w.state.Balance.StringFixed(2), w.state.Currency, amount.String())
	}
	return nil
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (w *WalletStore) Subscribe(fn func(WalletState)) func() {
	w.mu.Lock()
	id := w.nextSubID
	w.nextSubID++
	w.subscribers[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subscribers, id)
		w.mu.Unlock()
	}
}

func (w *WalletStore) notify() {
	w.mu.Lock()
	state := w.state
	subs := make([]func(WalletState), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// randomAddress must be called with mu held.
func (w *WalletStore) randomAddress() string {
	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(42)
	b.WriteString("0x")
	for i := 0; i < 40; i++ {
		b.WriteByte(hexDigits[w.rng.IntN(16)])
	}
	return b.String()
}
