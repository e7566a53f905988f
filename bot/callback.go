package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// 回调载荷统一为 kind:action:id 三段，避免按位置猜字符串
const (
	KindAdmin   = "admin"
	KindProduct = "prod"
	KindOrder   = "order"
	KindSupport = "sup"
)

const (
	ActionList      = "list"
	ActionAdd       = "add"
	ActionView      = "view"
	ActionEditName  = "edit_name"
	ActionEditCat   = "edit_cat"
	ActionEditPrice = "edit_price"
	ActionEditDesc  = "edit_desc"
	ActionEditPhoto = "edit_photo"
	ActionDelete    = "del"
	ActionMessage   = "msg"
	ActionComplete  = "done"
	ActionReply     = "reply"
)

type Callback struct {
	Kind   string
	Action string
	ID     int64
}

func (c Callback) Encode() string {
	return fmt.Sprintf("%s:%s:%d", c.Kind, c.Action, c.ID)
}

func ParseCallback(data string) (Callback, error) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 {
		return Callback{}, fmt.Errorf("malformed callback payload: %q", data)
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Callback{}, fmt.Errorf("malformed callback id: %q", data)
	}
	return Callback{Kind: parts[0], Action: parts[1], ID: id}, nil
}
