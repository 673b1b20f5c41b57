package hbasemap

// FamilyOptions are the tuning options of one column family, keyed in
// snake_case or lowerCamel: max_versions, compression, in_memory,
// bloom_filter_type, bloom_filter_vector_size, bloom_filter_nb_hashes,
// block_cache_enabled and time_to_live.
type FamilyOptions map[string]interface{}

// Families maps column family names to their options for CreateTable. A
// nil FamilyOptions takes the store defaults.
type Families map[string]FamilyOptions

// base model for every hbase model
type Model struct {
	Rowkey string
}

// Cell is one stored column value.
type Cell struct {
	Value     []byte
	Timestamp int64
}

// ScanOptions bound a Table.Scan.
type ScanOptions struct {
	// StartRow is inclusive, StopRow exclusive. Empty means unbounded.
	StartRow string
	StopRow  string
	// Columns restricts the scan to "family" or "family:qualifier" columns.
	Columns []string
	// Limit caps the number of rows returned; 0 is unlimited.
	Limit int
	// BatchSize is the number of rows fetched per round trip; 0 means
	// ScanBatchSize.
	BatchSize int32
	// Family qualifies unqualified names on the returned results.
	Family string
	// Filter is a server-side filter in the HBase filter language, e.g.
	// "PrefixFilter('user-')".
	Filter string
}
