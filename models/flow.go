package models

// FlowState 管理会话状态机的封闭状态集。
// 收到文本/图片消息时按当前状态分发，状态只会整体读写，不会按字段拆开。
type FlowState int

const (
	StateIdle FlowState = iota

	// 新增商品向导，按顺序推进
	StateAddName
	StateAddCategory
	StateAddPrice
	StateAddDescription
	StateAddPhoto

	// 单字段编辑，一条消息即结束
	StateEditName
	StateEditCategory
	StateEditPrice
	StateEditDescription
	StateEditPhoto

	StateSupportMessage // 用户 -> 全体管理员
	StateSupportReply   // 管理员 -> 指定用户
	StateOrderMessage   // 管理员 -> 买家，同时推进订单状态
)

func (s FlowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAddName:
		return "add_name"
	case StateAddCategory:
		return "add_cat"
	case StateAddPrice:
		return "add_price"
	case StateAddDescription:
		return "add_desc"
	case StateAddPhoto:
		return "add_photo"
	case StateEditName:
		return "edit_name"
	case StateEditCategory:
		return "edit_cat"
	case StateEditPrice:
		return "edit_price"
	case StateEditDescription:
		return "edit_desc"
	case StateEditPhoto:
		return "edit_photo"
	case StateSupportMessage:
		return "support_message"
	case StateSupportReply:
		return "support_reply"
	case StateOrderMessage:
		return "order_message"
	}
	return "unknown"
}

// Session 一个用户同一时刻最多一份，整体覆盖写入。
type Session struct {
	State        FlowState `json:"state"`
	ProductID    int64     `json:"product_id,omitempty"`
	TargetUserID int64     `json:"target_user_id,omitempty"`
	OrderID      int64     `json:"order_id,omitempty"`
}
