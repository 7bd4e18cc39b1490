// Package share serializes simulations to transportable tokens and
// validates untrusted incoming tokens before they may populate state.
//
// A token is base64-encoded JSON. Tokens typically arrive through a URL
// fragment controlled by a third party, so decoding is a strict
// never-trust boundary: every failure, whether transport, structural, or
// semantic, collapses into the single ErrInvalidToken sentinel and no
// partially-validated data ever reaches the caller.
package share

import (
	"encoding/base64"
	"errors"
	"math"
	"unicode/utf16"

	"github.com/goccy/go-json"

	"immoforecast/internal/simulation"
	"immoforecast/pkg/constants"
)

// ErrInvalidToken is returned for any malformed or rejected token.
var ErrInvalidToken = errors.New("invalid share token")

// Encode serializes a simulation into a share token. Deterministic and
// reversible: Decode(Encode(s)) returns s for any simulation that passes
// validation.
func Encode(sim simulation.Simulation) (string, error) {
	payload, err := json.Marshal(sim)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Mirror of the simulation shape with pointer fields, so that a missing
// field is distinguishable from a zero and a wrong JSON type fails the
// unmarshal outright.
type tokenPayload struct {
	ID   *string    `json:"id"`
	Name *string    `json:"name"`
	Data *tokenData `json:"data"`
}

type tokenData struct {
	PurchasePrice      *float64       `json:"prixAchat"`
	WorksCost          *float64       `json:"travaux"`
	NotaryFees         *float64       `json:"fraisNotaire"`
	DownPayment        *float64       `json:"apport"`
	AnnualInterestRate *float64       `json:"tauxInteret"`
	LoanDurationYears  *float64       `json:"dureeCredit"`
	MonthlyPayment     *float64       `json:"mensualiteCredit"`
	AutoCredit         *bool          `json:"autoCredit"`
	UnitCount          *float64       `json:"nbColocs"`
	Rents              *[]float64     `json:"loyers"`
	VacancyRate        *float64       `json:"vacanceLocative"`
	MarginalTaxRate    *float64       `json:"tmi"`
	Charges            *[]tokenCharge `json:"charges"`
}

type tokenCharge struct {
	ID    *string  `json:"id"`
	Name  *string  `json:"name"`
	Value *float64 `json:"value"`
}

// Decode runs the two-phase gate on an untrusted token: transport and
// structural parse first, then semantic validation. Any violation yields
// ErrInvalidToken; nothing is ever partially accepted.
func Decode(token string) (simulation.Simulation, error) {
	var zero simulation.Simulation

	// Bound the work done on attacker-controlled input before decoding.
	if token == "" || len(token) > constants.MaxShareTokenBytes {
		return zero, ErrInvalidToken
	}

	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return zero, ErrInvalidToken
	}

	var parsed tokenPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return zero, ErrInvalidToken
	}

	if !validate(parsed) {
		return zero, ErrInvalidToken
	}

	return build(parsed), nil
}

func validate(parsed tokenPayload) bool {
	if parsed.ID == nil || parsed.Name == nil || parsed.Data == nil {
		return false
	}
	// The cap counts UTF-16 code units, the unit tokens were historically
	// validated in, so accented and astral names measure the same on both
	// sides of the wire.
	if len(utf16.Encode([]rune(*parsed.Name))) > constants.MaxShareNameLength {
		return false
	}

	data := parsed.Data

	// Array caps are enforced before any content iteration so a
	// pathological token cannot buy excessive downstream computation.
	if data.Rents == nil || len(*data.Rents) > constants.MaxShareArrayLength {
		return false
	}
	if data.Charges == nil || len(*data.Charges) > constants.MaxShareArrayLength {
		return false
	}

	required := []*float64{
		data.PurchasePrice,
		data.WorksCost,
		data.NotaryFees,
		data.DownPayment,
		data.AnnualInterestRate,
		data.LoanDurationYears,
		data.MonthlyPayment,
		data.VacancyRate,
		data.MarginalTaxRate,
	}
	for _, field := range required {
		if field == nil || !boundedFinite(*field) {
			return false
		}
	}

	if *data.LoanDurationYears < 0 {
		return false
	}
	if data.UnitCount != nil && *data.UnitCount > constants.MaxShareArrayLength {
		return false
	}

	for _, rent := range *data.Rents {
		if !boundedFinite(rent) {
			return false
		}
	}
	for _, charge := range *data.Charges {
		if charge.Value == nil || !boundedFinite(*charge.Value) {
			return false
		}
	}

	return true
}

func boundedFinite(value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= constants.MinShareValue && value <= constants.MaxShareValue
}

func build(parsed tokenPayload) simulation.Simulation {
	data := parsed.Data
	input := simulation.Input{
		PurchasePrice:      *data.PurchasePrice,
		WorksCost:          *data.WorksCost,
		NotaryFees:         *data.NotaryFees,
		DownPayment:        *data.DownPayment,
		AnnualInterestRate: *data.AnnualInterestRate,
		// The wire type is numeric; a fractional duration is truncated
		// to whole years here.
		LoanDurationYears: int(*data.LoanDurationYears),
		MonthlyPayment:    *data.MonthlyPayment,
		VacancyRate:       *data.VacancyRate,
		MarginalTaxRate:   *data.MarginalTaxRate,
		Rents:             append([]float64(nil), *data.Rents...),
	}
	if data.AutoCredit != nil {
		input.AutoCredit = *data.AutoCredit
	}
	if data.UnitCount != nil {
		input.UnitCount = int(*data.UnitCount)
	}
	charges := make([]simulation.Charge, 0, len(*data.Charges))
	for _, charge := range *data.Charges {
		converted := simulation.Charge{AnnualValue: *charge.Value}
		if charge.ID != nil {
			converted.ID = *charge.ID
		}
		if charge.Name != nil {
			converted.Name = *charge.Name
		}
		charges = append(charges, converted)
	}
	input.Charges = charges

	return simulation.Simulation{
		ID:   *parsed.ID,
		Name: *parsed.Name,
		Data: input,
	}
}
