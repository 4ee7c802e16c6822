package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ByLCY/doughnut/chart"
	"github.com/ByLCY/doughnut/doughnut"
	"github.com/ByLCY/doughnut/dsl"
	"github.com/ByLCY/doughnut/layout"
	"github.com/ByLCY/doughnut/renderer"
	canvasrenderer "github.com/ByLCY/doughnut/renderer/canvas"
)

// runConfig 汇总命令行参数。
type runConfig struct {
	Input   string
	Options string
	Output  string
	Debug   string
	Report  bool
	Data    any
}

func main() {
	input := flag.String("in", "examples/revenue.chart", "图表 DSL 文件路径")
	options := flag.String("options", "", "YAML 配置文件路径，可选")
	output := flag.String("out", "output/revenue.pdf", "PDF 输出路径")
	debug := flag.String("debug", "", "内圈文字布局调试 JSON 输出路径")
	report := flag.Bool("report", false, "在标准输出打印内圈文字布局表")
	dataJSON := flag.String("data", "", "绑定到 DSL 的 JSON 数据，以 @ 开头时按文件路径读取")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync() //nolint:errcheck

	data, err := loadData(*dataJSON)
	if err != nil {
		logger.Fatal("解析 data JSON 失败", zap.Error(err))
	}

	cfg := runConfig{
		Input:   *input,
		Options: *options,
		Output:  *output,
		Debug:   *debug,
		Report:  *report,
		Data:    data,
	}
	var r renderer.Renderer = canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{Logger: logger.Named("renderer")})
	if err := run(cfg, r, logger); err != nil {
		logger.Fatal("生成 PDF 失败", zap.Error(err))
	}
	logger.Info("已生成 PDF", zap.String("path", *output))
}

func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadData(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	blob := []byte(raw)
	if path, ok := strings.CutPrefix(raw, "@"); ok {
		var err error
		if blob, err = os.ReadFile(path); err != nil {
			return nil, errors.Wrapf(err, "读取数据文件 %s 失败", path)
		}
	}
	var data any
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// run 串联解析、配置叠加、绘制与输出。
func run(cfg runConfig, r renderer.Renderer, logger *zap.Logger) error {
	if r == nil {
		return errors.New("renderer 不能为空")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(cfg.Input)
	if err != nil {
		return errors.Wrapf(err, "无法打开 DSL 文件 %s", cfg.Input)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return errors.Wrap(err, "解析 DSL 失败")
	}

	var plans []*layout.Plan
	plugin := doughnut.Plugin(
		doughnut.WithLogger(logger.Named(doughnut.Name)),
		doughnut.WithPlanObserver(func(p *layout.Plan) { plans = append(plans, p) }),
	)

	opts := chart.DefaultOptions(plugin)
	if cfg.Options != "" {
		if opts, err = loadOptions(cfg.Options, opts); err != nil {
			return err
		}
	}
	chartCfg, err := chart.FromDocument(doc, cfg.Data, opts)
	if err != nil {
		return errors.Wrap(err, "转换图表描述失败")
	}

	plot, err := chart.New(chartCfg, plugin)
	if err != nil {
		return errors.Wrap(err, "创建图表失败")
	}

	pdfBytes, err := r.Render(plot)
	if err != nil {
		return errors.Wrap(err, "渲染 PDF 失败")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return errors.Wrap(err, "创建输出目录失败")
	}
	if err := os.WriteFile(cfg.Output, pdfBytes, 0o644); err != nil {
		return errors.Wrap(err, "写入 PDF 文件失败")
	}

	if len(plans) == 0 {
		logger.Debug("未绘制内圈文字")
		return nil
	}
	plan := plans[len(plans)-1]
	if cfg.Debug != "" {
		if err := writeDebug(plan, cfg.Debug); err != nil {
			return err
		}
	}
	if cfg.Report {
		if err := layout.WriteReport(os.Stdout, plan); err != nil {
			return errors.Wrap(err, "输出布局报告失败")
		}
	}
	return nil
}

func loadOptions(path string, base chart.Options) (chart.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, errors.Wrapf(err, "无法打开配置文件 %s", path)
	}
	defer f.Close()
	return chart.LoadOptions(f, base)
}

func writeDebug(plan *layout.Plan, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return errors.Wrap(err, "创建调试目录失败")
	}
	if err := layout.WriteDebugJSON(plan, debugPath); err != nil {
		return errors.Wrap(err, "输出调试 JSON 失败")
	}
	return nil
}
