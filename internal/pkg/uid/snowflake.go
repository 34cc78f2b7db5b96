package uid

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 IDs.
//
// IDs generated by one node are strictly increasing, which the OTP ledger
// relies on as a tie-break when two records share a creation timestamp.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a generator whose node number is derived from the
// hostname, or from SNOWFLAKE_NODE when set.
func NewSnowflake() (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeNumber())
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns the next ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

func nodeNumber() int64 {
	src := os.Getenv("SNOWFLAKE_NODE")
	if src == "" {
		h, err := os.Hostname()
		if err != nil {
			return 1
		}
		src = h
	}

	f := fnv.New32a()
	f.Write([]byte(src))

	return int64(f.Sum32() % 1024) // 10 node bits
}
