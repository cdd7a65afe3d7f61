package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrUnknownEvent        = errors.New("unknown event")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// upload
	ErrNoFileProvided          = errors.New("No file provided")
	ErrMissingMetadataFields   = errors.New("Missing required metadata fields")

	// forms
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRoyaltyFee  = errors.New("royalty fee must be between 0 and 10000 basis points")
	ErrEmptyTokenURI      = errors.New("token uri is required")
	ErrInvalidPrice       = errors.New("price must be a positive ether amount")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrNotTokenOwner      = errors.New("You don't own this NFT")
	ErrBidTooLow          = errors.New("Bid must be higher than current bid")
	ErrBidIncrementTooLow = errors.New("bid is below the minimum bid increment")
	ErrNotAuction         = errors.New("listing is not an auction")
	ErrIsAuction          = errors.New("listing is an auction")
	ErrListingNotActive   = errors.New("listing is not active")
)

var badRequestErrors = []error{
	ErrBadParamInput,
	ErrInvalidNumberFormat,
	ErrInvalidChainId,
	ErrUnknownEvent,
	ErrInvalidAddress,
	ErrNoFileProvided,
	ErrMissingMetadataFields,
	ErrPasswordMismatch,
	ErrPasswordTooShort,
	ErrInvalidEmail,
	ErrUsernameTooShort,
	ErrInvalidRoyaltyFee,
	ErrEmptyTokenURI,
	ErrInvalidPrice,
	ErrInvalidCategory,
	ErrNotTokenOwner,
	ErrBidTooLow,
	ErrBidIncrementTooLow,
	ErrNotAuction,
	ErrIsAuction,
	ErrListingNotActive,
}

// IsBadRequest reports whether err stems from caller input rather than a failure of ours
func IsBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
