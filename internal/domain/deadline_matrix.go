package domain

import "errors"

// ErrInvalidDeadline is returned when a deadline entry has non-positive hours
var ErrInvalidDeadline = errors.New("deadline hours must be positive")

// Deadline holds the SLA window for a (platform, carrier) pair: hours after
// order placement to confirm, and hours after confirmation to hand the
// parcel to the carrier.
type Deadline struct {
	ConfirmHours  float64 `json:"confirmHours" yaml:"confirmHours"`
	HandoverHours float64 `json:"handoverHours" yaml:"handoverHours"`
}

// Validate checks that both windows are positive
func (d Deadline) Validate() error {
	if d.ConfirmHours <= 0 || d.HandoverHours <= 0 {
		return ErrInvalidDeadline
	}
	return nil
}

// DeadlineMatrix maps platform -> carrier -> deadline windows. It is treated
// as an immutable value: edits go through WithDeadline, which returns a new
// matrix, and callers swap the whole value. The evaluator never mutates it.
type DeadlineMatrix map[Platform]map[Carrier]Deadline

// Lookup returns the deadline entry for a (platform, carrier) pair.
// The second return is false when the pair is not configured; that is the
// "unknown SLA" path, not an error.
func (m DeadlineMatrix) Lookup(platform Platform, carrier Carrier) (Deadline, bool) {
	carriers, ok := m[platform]
	if !ok {
		return Deadline{}, false
	}
	deadline, ok := carriers[carrier]
	return deadline, ok
}

// WithDeadline returns a copy of the matrix with one entry replaced or added
func (m DeadlineMatrix) WithDeadline(platform Platform, carrier Carrier, deadline Deadline) DeadlineMatrix {
	next := m.Clone()
	if next[platform] == nil {
		next[platform] = make(map[Carrier]Deadline)
	}
	next[platform][carrier] = deadline
	return next
}

// Clone returns a deep copy of the matrix
func (m DeadlineMatrix) Clone() DeadlineMatrix {
	next := make(DeadlineMatrix, len(m))
	for platform, carriers := range m {
		next[platform] = make(map[Carrier]Deadline, len(carriers))
		for carrier, deadline := range carriers {
			next[platform][carrier] = deadline
		}
	}
	return next
}

// Validate checks every entry in the matrix
func (m DeadlineMatrix) Validate() error {
	for _, carriers := range m {
		for _, deadline := range carriers {
			if err := deadline.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultDeadlineMatrix returns the stock confirmation/handover windows per
// platform and carrier. Marketplace windows follow the platform seller
// policies (TikTok Shop enforces same-shift confirmation, Shopee allows two
// days); website orders follow the internal fulfillment target.
func DefaultDeadlineMatrix() DeadlineMatrix {
	return DeadlineMatrix{
		PlatformShopee: {
			CarrierGHN:           {ConfirmHours: 48, HandoverHours: 72},
			CarrierGHTK:          {ConfirmHours: 48, HandoverHours: 72},
			CarrierShopeeExpress: {ConfirmHours: 24, HandoverHours: 48},
			CarrierJTExpress:     {ConfirmHours: 48, HandoverHours: 72},
			CarrierViettelPost:   {ConfirmHours: 48, HandoverHours: 72},
		},
		PlatformTikTok: {
			CarrierJTExpress: {ConfirmHours: 4, HandoverHours: 12},
			CarrierGHN:       {ConfirmHours: 4, HandoverHours: 12},
			CarrierNinjaVan:  {ConfirmHours: 4, HandoverHours: 12},
		},
		PlatformWebsite: {
			CarrierViettelPost: {ConfirmHours: 24, HandoverHours: 48},
			CarrierGHTK:        {ConfirmHours: 24, HandoverHours: 48},
			CarrierJTExpress:   {ConfirmHours: 24, HandoverHours: 48},
		},
		PlatformLazada: {
			CarrierNinjaVan:    {ConfirmHours: 24, HandoverHours: 48},
			CarrierGHN:         {ConfirmHours: 24, HandoverHours: 48},
			CarrierViettelPost: {ConfirmHours: 24, HandoverHours: 48},
		},
	}
}
