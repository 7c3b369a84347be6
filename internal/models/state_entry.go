package models

// StateEntry is one row of the ledger key-value table.
type StateEntry struct {
	StorageKey string `db:"storage_key"` // canonical domain.StorageKey string
	Value      []byte `db:"value"`       // JSON document
	AuditTimes
}
