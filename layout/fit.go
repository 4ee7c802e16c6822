package layout

import "github.com/pkg/errors"

// fontSizes 是从大到小的候选字号阶梯（px）。末项 0 保证任何宽度预算下搜索都会终止。
var fontSizes = [...]float64{72, 64, 48, 36, 24, 18, 14, 12, 10, 9, 8, 5, 2, 0}

// LastFontIndex 是字号阶梯的最大下标。
const LastFontIndex = len(fontSizes) - 1

// FontSizes 返回字号阶梯的副本。
func FontSizes() []float64 {
	out := make([]float64, len(fontSizes))
	copy(out, fontSizes[:])
	return out
}

// FontSizeAt 返回下标 i 对应的字号，越界时夹到阶梯两端。
func FontSizeAt(i int) float64 {
	return fontSizes[clampIndex(i)]
}

// ValidateMaxFontSize 检查 maxFontSize 是否落在字号阶梯内。
func ValidateMaxFontSize(i int) error {
	if i < 0 || i > LastFontIndex {
		return errors.Wrapf(ErrMaxFontSize, "maxFontSize=%d，允许范围 0..%d", i, LastFontIndex)
	}
	return nil
}

// FitFont 从 start 的下一档开始逐档缩小字号，返回第一个宽度严格小于 maxWidth 的字号。
// start 会被夹到 [-1, LastFontIndex-1]，因此搜索永远不会越过末档。
func FitFont(m Measurer, text string, maxWidth float64, bold bool, start int) (TextLine, error) {
	idx := start
	if idx < -1 {
		idx = -1
	}
	if idx > LastFontIndex-1 {
		idx = LastFontIndex - 1
	}
	for {
		idx++
		line, err := measureAt(m, text, idx, bold)
		if err != nil {
			return TextLine{}, err
		}
		if line.Width < maxWidth || idx == LastFontIndex {
			return line, nil
		}
	}
}

// measureAt 以阶梯第 idx 档测量文字宽度，并用字形 "m" 的宽度近似行高。
func measureAt(m Measurer, text string, idx int, bold bool) (TextLine, error) {
	font := Font{Size: FontSizeAt(idx), Bold: bold}
	width, err := m.MeasureText(text, font)
	if err != nil {
		return TextLine{}, errors.Wrapf(err, "测量文字 %q（%s）失败", text, font)
	}
	height, err := m.MeasureText("m", font)
	if err != nil {
		return TextLine{}, errors.Wrapf(err, "测量参考字形（%s）失败", font)
	}
	return TextLine{
		Text:      text,
		Font:      font,
		FontIndex: clampIndex(idx),
		Width:     width,
		Height:    height,
	}, nil
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > LastFontIndex {
		return LastFontIndex
	}
	return i
}
