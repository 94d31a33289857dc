package cmd

import "github.com/ardnew/scenic/pkg"

var (
	ErrWriteConfig   = pkg.NewError("write configuration file")
	ErrFileExists    = pkg.NewError("file exists (use --force to overwrite)")
	ErrWriteDocument = pkg.NewError("write document")
	ErrInvalid       = pkg.NewError("document is not valid")
	ErrCategory      = pkg.NewError("no catalog of category")
	ErrWatch         = pkg.NewError("watch document")
)
