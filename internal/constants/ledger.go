package constants

const (
	AppName = "fintrack"

	// Ledger file
	LedgerFileName = "finance_data.csv"
	SQLiteFileName = "fintrack.db"
	CorruptSuffix  = ".corrupt"

	// Backends
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// LedgerHeader is the first line of every ledger file.
var LedgerHeader = []string{"Type", "Summe", "Beschreibung", "Datum"}

const LedgerFields = 4
