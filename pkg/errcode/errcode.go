package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError

	// Logging errors
	CreateLogFileError

	// Config errors
	ConfigWriteError
	ConfigReadError

	// Ingest errors
	CountriesFileError
	CountriesHeaderError
	RegionsFileError
	RegionsHeaderError

	// Report errors
	ReportWriteError
	ReportRenameError
	ReportReadError
	ReportSheetError

	// Split errors
	SplitDirError
	SplitExportError
)
