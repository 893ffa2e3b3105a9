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

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Store errors
	StoreOpenError
	StoreQueryError
	StoreUnknownTypeError
	RecordsReadError
	RecordsDuplicateError
	RecordsInvalidError

	// Rollup errors
	EmployeeNotFoundError
	InvalidLevelError

	// Populate errors
	PopulateNoRecordsError
	PopulateInsertError
	PopulateCancelledError

	// Output errors
	OutputFormatError
	OutputWriteError

	// CLI errors
	LevelParseError
)
