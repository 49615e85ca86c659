package store

import (
	"encoding/json"
	"fmt"

	"reddy-infra/internal/cart"
	"reddy-infra/internal/order"
	"reddy-infra/internal/user"
)

const snapshotVersion = 1

// AppState is everything the storefront persists on the device.
type AppState struct {
	User   user.Profile  `json:"user"`
	Cart   []cart.Item   `json:"cart"`
	Orders []order.Order `json:"orders"`
}

// DefaultState is a signed-out profile with an empty cart and no orders.
func DefaultState() AppState {
	return AppState{
		User:   user.Default(),
		Cart:   []cart.Item{},
		Orders: []order.Order{},
	}
}

// clone deep-copies s so that callers and the store never share memory.
func (s AppState) clone() AppState {
	s.Cart = cart.Clone(s.Cart)
	orders := make([]order.Order, len(s.Orders))
	for i, o := range s.Orders {
		orders[i] = o.Clone()
	}
	s.Orders = orders
	return s
}

type envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// Marshal encodes s inside a versioned envelope.
func Marshal(s AppState) ([]byte, error) {
	state, err := json.Marshal(s.clone())
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return json.Marshal(envelope{Version: snapshotVersion, State: state})
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (AppState, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if env.Version != snapshotVersion {
		return AppState{}, fmt.Errorf("%w: %d", ErrUnsupportedSnapshot, env.Version)
	}
	if len(env.State) == 0 {
		return AppState{}, fmt.Errorf("%w: missing state", ErrCorruptSnapshot)
	}

	var s AppState
	if err := json.Unmarshal(env.State, &s); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if err := cart.Validate(s.Cart); err != nil {
		return AppState{}, fmt.Errorf("%w: cart: %v", ErrCorruptSnapshot, err)
	}
	for _, o := range s.Orders {
		if err := o.Validate(); err != nil {
			return AppState{}, fmt.Errorf("%w: order %s: %v", ErrCorruptSnapshot, o.ID, err)
		}
	}
	return s.clone(), nil
}
