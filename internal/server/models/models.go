package models

import (
	"regexp"
	"time"
)

// Validation messages for the Color entity. RgbError keeps the historical
// wording clients already match on.
const (
	NomRequiredError = "The Nom field is required."
	RgbRequiredError = "The Rgb field is required."
	RgbError         = "Must be '#' plus a six digits hexadecimal value. Ex #CACACA"
)

var rgbPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Color is a named color. Wire field names (Id, Nom, Rgb) are part of the
// public API contract and must not change.
type Color struct {
	Id  int    `json:"Id"`
	Nom string `json:"Nom"`
	Rgb string `json:"Rgb"`
}

// FieldErrors maps a field name to the validation messages it violated.
type FieldErrors map[string][]string

// Validate checks the candidate's field rules and accumulates every
// violation. It is pure: no I/O, no store access, and it does not inspect Id
// (client-supplied ids are a store-level concern, not a field rule).
func (c Color) Validate() FieldErrors {
	errs := FieldErrors{}
	if c.Nom == "" {
		errs["Nom"] = append(errs["Nom"], NomRequiredError)
	}
	switch {
	case c.Rgb == "":
		errs["Rgb"] = append(errs["Rgb"], RgbRequiredError)
	case !rgbPattern.MatchString(c.Rgb):
		errs["Rgb"] = append(errs["Rgb"], RgbError)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// User is a credential record owned by the identity collaborator.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
