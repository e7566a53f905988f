package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenOrderSn 订单流水号
func GenOrderSn() string {
	return fmt.Sprintf("SN%d", node.Generate().Int64())
}
