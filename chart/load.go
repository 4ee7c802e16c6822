package chart

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadOptions 以 base 为底叠加 YAML 配置；文件中未出现的字段保持 base 的值。
// 未知字段视为配置错误。
func LoadOptions(r io.Reader, base Options) (Options, error) {
	opts := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, errors.Wrap(err, "解析配置文件失败")
	}
	return opts, nil
}
