package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake
// algorithm. Used for request correlation ids; conversation and message
// ids come from the store's own counters, which the API contract requires
// to be small and contiguous.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns a new ID in snowflake's base58 string form.
func NewString() string {
	return node.Generate().Base58()
}
