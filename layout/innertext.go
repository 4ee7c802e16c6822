package layout

// linePadding 是主行与说明行之间的固定间距（px）。
const linePadding = 15.0

// PlanInnerText 计算圆环内 1~3 行文字的字号与位置。
//
// 字号搜索总是从起点的下一档开始：主行加粗，从 maxFontSize 开始搜索（maxFontSize 为 0
// 时即从第二档开始）。说明行先以主行选中的档位为起点测量一次，用于纵向排布；
// 再以统一后的档位为起点重新搜索，得到实际绘制的字号。纵向排布按说明行的组合分四种情况：
//   - 上下都有：基线 middle，主行居中，上下说明行对称分布在 ±(主行高/2 + 15px)；
//   - 仅上方说明：基线 top，说明行在上、主行在下，紧贴并整体居中；
//   - 仅下方说明：基线 top，主行在上，间隔 15px 后为说明行，整体居中；
//   - 都没有：基线 middle，单行居中。
func PlanInnerText(m Measurer, text InnerText, g Geometry) (*Plan, error) {
	if g.InnerRadius <= 0 {
		return nil, ErrNoInnerArea
	}
	if err := ValidateMaxFontSize(text.MaxFontSize); err != nil {
		return nil, err
	}
	maxWidth := g.MaxTextWidth()

	primary, err := FitFont(m, text.Value, maxWidth, true, text.MaxFontSize)
	if err != nil {
		return nil, err
	}
	primary.Role = RolePrimary

	hasPre := text.PreText != ""
	hasPost := text.PostText != ""

	pre, err := FitFont(m, text.PreText, maxWidth, false, primary.FontIndex)
	if err != nil {
		return nil, err
	}
	post, err := FitFont(m, text.PostText, maxWidth, false, primary.FontIndex)
	if err != nil {
		return nil, err
	}
	pre.Role = RolePre
	post.Role = RolePost

	// 两行说明都有时取较小的字号（较大的下标）；只有一行时取两次测量中较大的字号，
	// 空说明行总是在主行下一档即可放下。
	secondary := min(pre.FontIndex, post.FontIndex)
	if hasPre && hasPost {
		secondary = max(pre.FontIndex, post.FontIndex)
	}

	plan := &Plan{Geometry: g, MaxWidth: maxWidth}
	switch {
	case hasPre && hasPost:
		plan.Baseline = BaselineMiddle
		offset := primary.Height/2 + linePadding
		pre.Offset = offset
		post.Offset = -offset
	case hasPre:
		plan.Baseline = BaselineTop
		total := primary.Height + pre.Height
		pre.Offset = total / 2
		primary.Offset = pre.Offset - pre.Height
	case hasPost:
		plan.Baseline = BaselineTop
		total := post.Height + linePadding + primary.Height
		primary.Offset = total / 2
		post.Offset = primary.Offset - linePadding - primary.Height
	default:
		plan.Baseline = BaselineMiddle
	}

	plan.Lines = append(plan.Lines, place(primary, g))
	for _, caption := range []TextLine{pre, post} {
		if caption.Text == "" {
			continue
		}
		drawn, err := refit(m, caption, maxWidth, secondary)
		if err != nil {
			return nil, err
		}
		plan.Lines = append(plan.Lines, place(drawn, g))
	}
	return plan, nil
}

// refit 以 start 为起点重新搜索说明行的绘制字号，保留排布阶段的偏移与预留高度。
func refit(m Measurer, caption TextLine, maxWidth float64, start int) (TextLine, error) {
	drawn, err := FitFont(m, caption.Text, maxWidth, false, start)
	if err != nil {
		return TextLine{}, err
	}
	drawn.Role = caption.Role
	drawn.Height = caption.Height
	drawn.Offset = caption.Offset
	return drawn, nil
}

// place 将一行文字水平居中到圆心，并按偏移量确定 y。
func place(ln TextLine, g Geometry) TextLine {
	ln.X = g.Left - ln.Width/2
	ln.Y = g.Top - ln.Offset
	return ln
}

// Draw 将布局结果绘制到画布上。主行沿用画布当前的填充色，说明行使用 SecondaryColor，
// 绘制结束后恢复原填充色。
func Draw(s Surface, p *Plan) error {
	if p == nil || len(p.Lines) == 0 {
		return nil
	}
	s.SetTextBaseline(p.Baseline)
	prev := s.FillColor()
	recolored := false
	for _, ln := range p.Lines {
		if ln.Role != RolePrimary && !recolored {
			s.SetFillColor(SecondaryColor)
			recolored = true
		}
		if err := s.FillText(ln.Text, ln.Font, ln.X, ln.Y); err != nil {
			return err
		}
	}
	if recolored {
		s.SetFillColor(prev)
	}
	return nil
}
