package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidSheet  ErrorCode = "VALIDATION_006"
)

// Spreadsheet store error codes (SHEET_*)
const (
	SheetUnavailable    ErrorCode = "SHEET_001"
	SheetReadFailed     ErrorCode = "SHEET_002"
	SheetWriteFailed    ErrorCode = "SHEET_003"
	SheetColumnMissing  ErrorCode = "SHEET_004"
	SheetNotFound       ErrorCode = "SHEET_005"
	SheetOpUnsupported  ErrorCode = "SHEET_006"
	SheetFlushDegraded  ErrorCode = "SHEET_007"
)

// Edit session error codes (SESSION_*)
const (
	SessionAlreadyActive  ErrorCode = "SESSION_001"
	SessionNotActive      ErrorCode = "SESSION_002"
	SessionFlushInFlight  ErrorCode = "SESSION_003"
	SessionNothingPending ErrorCode = "SESSION_004"
)

// Merchant grouping error codes (MERCHANT_*)
const (
	MerchantNotFound    ErrorCode = "MERCHANT_001"
	MerchantEmptyName   ErrorCode = "MERCHANT_002"
	MerchantNoRows      ErrorCode = "MERCHANT_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound       ErrorCode = "BUDGET_001"
	BudgetInvalidHorizon ErrorCode = "BUDGET_002"
	BudgetInvalidAmount  ErrorCode = "BUDGET_003"
)

// Settings error codes (SETTING_*)
const (
	SettingNotFound        ErrorCode = "SETTING_001"
	SettingSealed          ErrorCode = "SETTING_002"
	SettingSealBroken      ErrorCode = "SETTING_003"
	SettingSealUnavailable ErrorCode = "SETTING_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidPeriod: "Period must be one of week, payweek, month, year",
	ValidationInvalidAmount: "Invalid amount",
	ValidationInvalidSheet:  "Invalid or unknown sheet name",

	// Spreadsheet store errors
	SheetUnavailable:   "Spreadsheet service is unreachable",
	SheetReadFailed:    "Reading the spreadsheet failed",
	SheetWriteFailed:   "Writing to the spreadsheet failed",
	SheetColumnMissing: "A required column is missing from the sheet header",
	SheetNotFound:      "Sheet not found in the spreadsheet",
	SheetOpUnsupported: "The configured spreadsheet backend does not support this operation",
	SheetFlushDegraded: "Batch write failed; some cells were written individually",

	// Edit session errors
	SessionAlreadyActive:  "An edit session is already active",
	SessionNotActive:      "No edit session is active",
	SessionFlushInFlight:  "A flush is in progress; retry when it completes",
	SessionNothingPending: "The edit session has no pending changes",

	// Merchant grouping errors
	MerchantNotFound:  "Merchant not found in the loaded sheet",
	MerchantEmptyName: "Merchant name cannot be empty",
	MerchantNoRows:    "No rows match this merchant",

	// Budget errors
	BudgetNotFound:       "No budget is set for this category",
	BudgetInvalidHorizon: "Horizon must be one of week, payweek, month, year",
	BudgetInvalidAmount:  "Budget amount must be a non-negative number",

	// Settings errors
	SettingNotFound:        "No setting is stored under this key",
	SettingSealed:          "This setting is sealed and cannot be read back in plain form",
	SettingSealBroken:      "The sealed value could not be opened with the configured passphrase",
	SettingSealUnavailable: "Sealed settings require a secrets passphrase to be configured",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "The requested resource was not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
