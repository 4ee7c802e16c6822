package renderer

import "github.com/ByLCY/doughnut/chart"

// Renderer 将图表输出为最终文件，例如 PDF。
// Render 负责绘制图形、执行图表的绘制钩子，并返回生成的二进制数据。
type Renderer interface {
	Render(p *chart.Plot) ([]byte, error)
}
