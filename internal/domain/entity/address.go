package entity

// Address is the postal address of a doctor's practice.
// It is a value object: it has no identity and is stored alongside its owner.
type Address struct {
	Street     string `json:"street"`               // Street name (logradouro).
	District   string `json:"district"`             // Neighbourhood (bairro).
	ZipCode    string `json:"zip_code"`             // Eight digit postal code (CEP).
	City       string `json:"city"`                 // City name.
	State      string `json:"state"`                // Two letter state code (UF).
	Number     string `json:"number,omitempty"`     // Optional street number.
	Complement string `json:"complement,omitempty"` // Optional complement, e.g. "sala 3".
}

// AddressPatch carries a partial address update. Nil fields are left untouched.
type AddressPatch struct {
	Street     *string `json:"street,omitempty"`
	District   *string `json:"district,omitempty"`
	ZipCode    *string `json:"zip_code,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Number     *string `json:"number,omitempty"`
	Complement *string `json:"complement,omitempty"`
}

// Merge returns a copy of the address with every non-nil patch field applied.
func (a Address) Merge(patch *AddressPatch) Address {
	if patch == nil {
		return a
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&a.Street, patch.Street)
	apply(&a.District, patch.District)
	apply(&a.ZipCode, patch.ZipCode)
	apply(&a.City, patch.City)
	apply(&a.State, patch.State)
	apply(&a.Number, patch.Number)
	apply(&a.Complement, patch.Complement)

	return a
}
