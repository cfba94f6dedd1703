package conf

// MaxKeyLength - Maximum number of bytes in a key, keys are held in a 32 byte buffer including terminator
const MaxKeyLength int = 31

// DefaultMaxLoadFactor - Load factor above which the table grows, unless configured otherwise
const DefaultMaxLoadFactor float64 = 0.5

// DefaultGrowthFactor - Factor the table size is multiplied with when growing, unless configured otherwise
const DefaultGrowthFactor float64 = 2.0

// MaxTableSize - Largest number of slots a table may grow to
const MaxTableSize int = 1<<31 - 1
