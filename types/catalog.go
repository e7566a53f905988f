package types

// TimeLayout 对外接口统一的时间格式
const TimeLayout = "2006-01-02 15:04:05"

// CatalogItem 目录投影里的一条商品记录，也是 /api/products 的响应单元。
// Image 为空串或 "images/<文件名>"。
type CatalogItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
