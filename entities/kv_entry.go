package entities

// KVEntry backs the key-value capability used for chat session persistence.
type KVEntry struct {
	Key   string `gorm:"primary_key" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	Timestamp
}
