// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CheckoutStatus is the outcome reported by the external checkout widget.
type CheckoutStatus string

const (
	CheckoutSuccessful CheckoutStatus = "successful"
	CheckoutCancelled  CheckoutStatus = "cancelled"
	CheckoutFailed     CheckoutStatus = "failed"
)

// CheckoutRequest is what the visitor asks the checkout to charge.
type CheckoutRequest struct {
	Amount    int64  `json:"amount" validate:"gt=0"`
	Currency  string `json:"currency" validate:"required,len=3,alpha,uppercase"`
	Purpose   string `json:"purpose" validate:"required,max=200"`
	DonorName string `json:"donor_name,omitempty" validate:"max=200"`
}

// CheckoutResult is the checkout's verdict for a request.
type CheckoutResult struct {
	Status    CheckoutStatus `json:"status"`
	Reference string         `json:"reference,omitempty"`
}

// DonationCallback is the body the checkout provider posts to the confirm
// webhook.
type DonationCallback struct {
	CheckoutRequest
	Status    CheckoutStatus `json:"status" validate:"required"`
	Reference string         `json:"reference" validate:"required,max=200"`
}
