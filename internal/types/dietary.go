package types

import "encoding/json"

// DietaryFlag is the tri-state diabetic restriction of a user.
type DietaryFlag int

const (
	// DietaryUnset means the user never answered the question.
	DietaryUnset DietaryFlag = iota
	DietaryDiabetic
	DietaryNotDiabetic
)

// DietaryFlagFromPtr converts the nullable column value into a flag.
func DietaryFlagFromPtr(isDiabetic *bool) DietaryFlag {
	switch {
	case isDiabetic == nil:
		return DietaryUnset
	case *isDiabetic:
		return DietaryDiabetic
	default:
		return DietaryNotDiabetic
	}
}

// Diabetic reports whether the diabetic recipe filter applies.
func (f DietaryFlag) Diabetic() bool {
	return f == DietaryDiabetic
}

func (f DietaryFlag) String() string {
	switch f {
	case DietaryDiabetic:
		return "diabetic"
	case DietaryNotDiabetic:
		return "not_diabetic"
	default:
		return "unset"
	}
}

// MarshalJSON renders the flag the way clients store it: true, false or null.
func (f DietaryFlag) MarshalJSON() ([]byte, error) {
	switch f {
	case DietaryDiabetic:
		return json.Marshal(true)
	case DietaryNotDiabetic:
		return json.Marshal(false)
	default:
		return []byte("null"), nil
	}
}
