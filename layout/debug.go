package layout

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(p *Plan, path string) error {
	if p == nil {
		return nil
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "序列化布局结果失败")
	}
	return os.WriteFile(path, data, 0o644)
}
