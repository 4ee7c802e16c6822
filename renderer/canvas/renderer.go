package canvasrenderer

import (
	"bytes"
	"image/color"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"go.uber.org/zap"

	"github.com/ByLCY/doughnut/chart"
	"github.com/ByLCY/doughnut/fonts"
	"github.com/ByLCY/doughnut/layout"
	"github.com/ByLCY/doughnut/renderer"
)

// Renderer draws charts via github.com/tdewolff/canvas and emits PDF.
// A Renderer may be reused across plots; the loaded font family is shared.
type Renderer struct {
	logger *zap.Logger

	// injected resources
	fontBlobs map[string][]byte // by fonts.Regular / fonts.Bold

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Logger *zap.Logger
	// Fonts overrides the embedded faces, keyed by fonts.Regular / fonts.Bold.
	Fonts map[string]Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer using the embedded Go fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected resources.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		logger:    opts.Logger,
		fontBlobs: map[string][]byte{},
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			r.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := os.ReadFile(res.Path)
			if err != nil {
				r.logger.Warn("读取字体文件失败，改用内置字体", zap.String("font", name), zap.Error(err))
				continue
			}
			r.fontBlobs[name] = data
		}
	}
	return r
}

// Render 绘制圆环与图例，按注册顺序执行图表的绘制钩子，并输出 PDF。
func (r *Renderer) Render(p *chart.Plot) ([]byte, error) {
	if p == nil {
		return nil, errors.New("图表为空")
	}
	opts := p.Options()
	fill, err := chart.ParseColor(opts.Font.Color)
	if err != nil {
		return nil, errors.Wrap(err, "解析文字颜色失败")
	}

	width, height := layout.ToMM(p.Width()), layout.ToMM(p.Height())
	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	// 图例宽度参与圆心的自动偏移，因此先于圆环绘制
	if err := r.drawLegend(ctx, p, fill); err != nil {
		return nil, err
	}
	if opts.Series.Pie.Show {
		r.drawRing(ctx, p)
	}

	s := &surface{r: r, ctx: ctx, fill: fill, baseline: layout.BaselineTop}
	if err := p.RunDraw(s); err != nil {
		return nil, err
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "写入 PDF 失败")
	}
	r.logger.Debug("渲染完成",
		zap.Float64("width", p.Width()),
		zap.Float64("height", p.Height()),
		zap.Int("series", len(p.Data())),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// MeasureText 返回文字在给定字号下的宽度（px）。字号为 0 的文字宽度为 0。
func (r *Renderer) MeasureText(text string, font layout.Font) (float64, error) {
	if font.Size <= 0 || text == "" {
		return 0, nil
	}
	face, err := r.fontFace(font, layout.Color{})
	if err != nil {
		return 0, err
	}
	return layout.FromMM(face.TextWidth(text)), nil
}

// fontFace 创建字体面；layout 字号为 px，字体系统使用 pt。
func (r *Renderer) fontFace(font layout.Font, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if font.Bold {
		style = canvas.FontBold
	}
	return family.Face(layout.ToPT(font.Size), colorFromLayout(col), style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	family := canvas.NewFontFamily("sans-serif")
	for _, face := range []struct {
		name  string
		style canvas.FontStyle
	}{
		{fonts.Regular, canvas.FontRegular},
		{fonts.Bold, canvas.FontBold},
	} {
		data, err := r.loadFontBytes(face.name)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, face.style); err != nil {
			return nil, errors.Wrapf(err, "加载字体 %s 失败", face.name)
		}
	}
	r.family = family
	return family, nil
}

func (r *Renderer) loadFontBytes(name string) ([]byte, error) {
	if blob, ok := r.fontBlobs[name]; ok {
		return blob, nil
	}
	return fonts.Load(name)
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
