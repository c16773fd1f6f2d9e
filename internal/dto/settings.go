package dto

// UpdateSettingRequest sets a plain key-value setting
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SealSecretRequest stores a value sealed at rest. The plaintext is never
// returned by the settings endpoints once sealed.
type SealSecretRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingResponse returns one readable setting
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DeleteSettingResponse confirms a setting removal
type DeleteSettingResponse struct {
	Message string `json:"message"`
}

// SealSecretResponse confirms a value was stored sealed. The plaintext is
// deliberately absent.
type SealSecretResponse struct {
	Key    string `json:"key"`
	Sealed bool   `json:"sealed"`
}
