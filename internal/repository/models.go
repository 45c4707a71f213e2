package repository

// Cell is a cell the cache has seen. Seq keeps insertion order.
type Cell struct {
	OutPoint string `gorm:"primaryKey;size:74"` // 0x + 36 byte out point
	Seq      uint64 `gorm:"autoIncrement;uniqueIndex;not null"`
	Usable   bool   `gorm:"not null;index"`
	Output   []byte `gorm:"type:bytea;not null"` // molecule CellOutput
	Data     []byte `gorm:"type:bytea;not null"`
}

func (Cell) TableName() string { return "cache_cells" }

// Unusable is a tombstone on an out point.
type Unusable struct {
	OutPoint string `gorm:"primaryKey;size:74"`
}

func (Unusable) TableName() string { return "cache_unusable" }

// Transaction is an entry of the append-only transaction log.
type Transaction struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Hash string `gorm:"size:66;index;not null"`
	Raw  []byte `gorm:"type:bytea;not null"` // molecule Transaction
}

func (Transaction) TableName() string { return "cache_transactions" }
