package config

import "path/filepath"

// Web 静态站点与目录投影配置
type Web struct {
	Dir      string `json:"dir" yaml:"dir"`             // 静态文件根目录
	SeedFile string `json:"seed_file" yaml:"seed_file"` // 可选：商品初始数据
}

func (w *Web) DataFile() string {
	return filepath.Join(w.Dir, "data.json")
}

func (w *Web) ImagesDir() string {
	return filepath.Join(w.Dir, "images")
}

func (w *Web) IndexFile() string {
	return filepath.Join(w.Dir, "index.html")
}
