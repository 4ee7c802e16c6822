package layout

import "github.com/pkg/errors"

var (
	// ErrMaxFontSize 表示 maxFontSize 超出字号阶梯范围，应在初始化阶段报出。
	ErrMaxFontSize = errors.New("layout: maxFontSize 超出字号阶梯范围")
	// ErrNoInnerArea 表示圆环没有内圈（内半径 <= 0），不应绘制任何文字。
	ErrNoInnerArea = errors.New("layout: 圆环内半径必须大于 0")
	// ErrUnknownValueFormat 表示 valueFormat 不是 numeric/currency/none 之一。
	ErrUnknownValueFormat = errors.New("layout: 未知的 valueFormat")
)
