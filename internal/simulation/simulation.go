// Package simulation defines the investment description manipulated by
// callers and consumed by the calculation engines.
package simulation

import (
	"fmt"

	"immoforecast/pkg/mortgage"
)

// Charge is one recurring annual expense. The id is the identity used by
// update and remove operations and must be unique within a simulation.
type Charge struct {
	ID          string  `json:"id" mapstructure:"id"`
	Name        string  `json:"name" mapstructure:"name"`
	AnnualValue float64 `json:"value" mapstructure:"value"`
}

// Input is the mutable investment description. JSON tags carry the wire
// names used by share tokens and the HTTP API, which predate this
// implementation and must stay stable.
type Input struct {
	PurchasePrice      float64   `json:"prixAchat" mapstructure:"prixAchat"`
	WorksCost          float64   `json:"travaux" mapstructure:"travaux"`
	NotaryFees         float64   `json:"fraisNotaire" mapstructure:"fraisNotaire"`
	DownPayment        float64   `json:"apport" mapstructure:"apport"`
	AnnualInterestRate float64   `json:"tauxInteret" mapstructure:"tauxInteret"`
	LoanDurationYears  int       `json:"dureeCredit" mapstructure:"dureeCredit"`
	MonthlyPayment     float64   `json:"mensualiteCredit" mapstructure:"mensualiteCredit"`
	AutoCredit         bool      `json:"autoCredit" mapstructure:"autoCredit"`
	UnitCount          int       `json:"nbColocs" mapstructure:"nbColocs"`
	Rents              []float64 `json:"loyers" mapstructure:"loyers"`
	VacancyRate        float64   `json:"vacanceLocative" mapstructure:"vacanceLocative"`
	MarginalTaxRate    float64   `json:"tmi" mapstructure:"tmi"`
	Charges            []Charge  `json:"charges" mapstructure:"charges"`
}

// Simulation is a named investment description, the unit exchanged with
// persistent storage and share tokens.
type Simulation struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
	Data Input  `json:"data" mapstructure:"data"`
}

// Default returns the seed investment description presented to a user who
// has not loaded or imported anything yet.
func Default() Input {
	purchasePrice := 92000.0
	return Input{
		PurchasePrice:      purchasePrice,
		WorksCost:          20000,
		NotaryFees:         mortgage.NotaryFees(purchasePrice),
		DownPayment:        15000,
		AnnualInterestRate: 3.85,
		LoanDurationYears:  20,
		MonthlyPayment:     567,
		AutoCredit:         false,
		UnitCount:          3,
		Rents:              []float64{493, 493, 493},
		VacancyRate:        5,
		MarginalTaxRate:    30,
		Charges: []Charge{
			{ID: "copro", Name: "Charges de copropriété", AnnualValue: 2733},
			{ID: "pno", Name: "Assurance PNO", AnnualValue: 159.81},
			{ID: "internet", Name: "Internet", AnnualValue: 420},
			{ID: "electricite", Name: "Électricité", AnnualValue: 600},
			{ID: "eau", Name: "Eau", AnnualValue: 696},
			{ID: "fonciere", Name: "Taxe foncière", AnnualValue: 1170},
			{ID: "cfe", Name: "CFE", AnnualValue: 354},
			{ID: "compta", Name: "Comptabilité", AnnualValue: 289},
			{ID: "gestion", Name: "Logiciel de gestion", AnnualValue: 48},
			{ID: "ogi", Name: "OGA", AnnualValue: 102},
		},
	}
}

// SetPurchasePrice updates the price and re-derives the default notary
// fee from it. Callers that want an explicit notary figure set it after.
func (in *Input) SetPurchasePrice(price float64) {
	in.PurchasePrice = price
	in.NotaryFees = mortgage.NotaryFees(price)
}

// SetUnitCount resizes the rents list to track the unit counter, padding
// new units with a zero rent and truncating removed ones.
func (in *Input) SetUnitCount(count int) {
	if count < 0 {
		count = 0
	}
	in.UnitCount = count
	if count > len(in.Rents) {
		padded := make([]float64, count)
		copy(padded, in.Rents)
		in.Rents = padded
	} else {
		in.Rents = in.Rents[:count]
	}
}

// SetRent updates one unit's monthly rent; out-of-range indexes are
// ignored so a stale caller cannot corrupt the list.
func (in *Input) SetRent(index int, rent float64) {
	if index < 0 || index >= len(in.Rents) {
		return
	}
	in.Rents[index] = rent
}

// AddCharge appends a charge. It fails if the id is already taken, since
// the id is the identity used by UpdateCharge and RemoveCharge.
func (in *Input) AddCharge(charge Charge) error {
	for _, existing := range in.Charges {
		if existing.ID == charge.ID {
			return fmt.Errorf("charge id %q already exists", charge.ID)
		}
	}
	in.Charges = append(in.Charges, charge)
	return nil
}

// UpdateCharge replaces the charge with the same id, preserving insertion
// order.
func (in *Input) UpdateCharge(charge Charge) error {
	for i, existing := range in.Charges {
		if existing.ID == charge.ID {
			in.Charges[i] = charge
			return nil
		}
	}
	return fmt.Errorf("charge id %q not found", charge.ID)
}

// RemoveCharge deletes the charge with the given id.
func (in *Input) RemoveCharge(id string) error {
	for i, existing := range in.Charges {
		if existing.ID == id {
			in.Charges = append(in.Charges[:i], in.Charges[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("charge id %q not found", id)
}

// ChargeValues extracts the annual values in insertion order.
func (in Input) ChargeValues() []float64 {
	values := make([]float64, len(in.Charges))
	for i, charge := range in.Charges {
		values[i] = charge.AnnualValue
	}
	return values
}

// Clone returns a deep copy so scenario runs can mutate freely without
// touching the caller's input.
func (in Input) Clone() Input {
	clone := in
	clone.Rents = append([]float64(nil), in.Rents...)
	clone.Charges = append([]Charge(nil), in.Charges...)
	return clone
}
