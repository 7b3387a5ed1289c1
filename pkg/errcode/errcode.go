package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Plant errors
	PlantValidationError
	PlantDuplicateIDError
	PlantNotFoundError

	// Supplier errors
	SupplierValidationError
	SupplierNotFoundError

	// Store errors
	StoreOpenError
	StoreReadError
	StoreDecodeError
	StoreWriteError
	StoreCloseError

	// CLI input errors
	InputAbandonedError
	InputFormatError
)
