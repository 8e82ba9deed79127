package utils

import (
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

// IDGenerator hands out time-ordered 64-bit ids.
type IDGenerator interface {
	NextID() int64
}

type snowflakeGen struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", nodeID)
	}
	return &snowflakeGen{node: node}, nil
}

func (g *snowflakeGen) NextID() int64 { return g.node.Generate().Int64() }
