package document

import "github.com/ardnew/scenic/pkg"

// Sentinel errors returned while decoding, encoding or traversing documents.
var (
	ErrChoiceCardinality = pkg.NewError("choice group must hold exactly one alternative")
	ErrUnknownVariant    = pkg.NewError("unknown element in choice group")
	ErrUnknownCategory   = pkg.NewError("unknown catalog category")
	ErrUnsupportedFormat = pkg.NewError("unsupported document format")
	ErrDecode            = pkg.NewError("cannot decode document")
	ErrEncode            = pkg.NewError("cannot encode document")
	ErrNotAddressable    = pkg.NewError("field cannot be replaced")
)
