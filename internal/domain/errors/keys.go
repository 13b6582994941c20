package errors

// Message IDs dos erros de negócio. As traduções devem estar em
// internal/infrastructure/i18n/locales/*.json
const (
	KeyBrandNotFound   = "error.brand_not_found"
	KeyBrandNameExists = "error.brand_name_exists"
	KeyBrandIDMissing  = "error.brand_id_not_found"

	KeyModelNotFound   = "error.model_not_found"
	KeyModelNameExists = "error.model_name_exists"
	KeyModelIDMissing  = "error.model_id_not_found"

	KeyFuelTypeNotFound   = "error.fuel_type_not_found"
	KeyFuelTypeNameExists = "error.fuel_type_name_exists"
	KeyFuelTypeInUse      = "error.fuel_type_in_use"
	KeyFuelTypeIDMissing  = "error.fuel_type_id_not_found"

	KeyVehicleNotFound     = "error.vehicle_not_found"
	KeyVehicleExists       = "error.vehicle_exists"
	KeyVehicleValueLocked  = "error.vehicle_fipe_value_locked"
	KeyVehicleDeleteLocked = "error.vehicle_fipe_delete_locked"

	KeyUserNotFound         = "error.user_not_found"
	KeyUserEmailExists      = "error.user_email_exists"
	KeyUserNationalIDExists = "error.user_national_id_exists"
	KeyUserDeleteOwnAccount = "error.user_delete_own_account"

	KeyInvalidCredentials  = "error.invalid_credentials"
	KeyRefreshTokenInvalid = "error.refresh_token_invalid"
	KeyUnauthorized        = "error.unauthorized"

	KeyValidation = "error.validation"
	KeyInternal   = "error.internal"
)
