package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	imageWidth      = 1200
	headerHeight    = 70
	axisHeight      = 30
	rowHeight       = 44
	footerHeight    = 40
	leftLabelsWidth = 240
	rightPadding    = 30
	barPaddingY     = 8
	barRadius       = 6.0
	minImageRows    = 1

	titleFontSize = 22
	labelFontSize = 14
	smallFontSize = 12
)

type fontStyle int

const (
	fontRegular fontStyle = iota
	fontBold
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	textColor       = color.RGBA{80, 85, 90, 255}
	hourLineColor   = color.NRGBA{200, 200, 200, 255}
	evenRowColor    = color.NRGBA{238, 238, 238, 255}
	barColor        = color.RGBA{133, 193, 85, 230}
	conflictColor   = color.RGBA{235, 87, 87, 230}
	barTextColor    = color.RGBA{20, 24, 28, 230}
	emptyStateColor = color.RGBA{140, 145, 150, 255}
)

// hourRange диапазон часов шкалы; end может быть больше 24 для событий после полуночи
type hourRange struct {
	start int
	end   int
}

func (h hourRange) minutes() float64 {
	return float64((h.end - h.start) * 60)
}

var (
	fontsOnce   sync.Once
	parsedFonts map[fontStyle]*opentype.Font
)

// Go-шрифты покрывают кириллицу и умлауты, basicfont - только ASCII
func parseFonts() {
	parsedFonts = make(map[fontStyle]*opentype.Font)
	for style, data := range map[fontStyle][]byte{
		fontRegular: goregular.TTF,
		fontBold:    gobold.TTF,
	} {
		if f, err := opentype.Parse(data); err == nil {
			parsedFonts[style] = f
		}
	}
}

// loadFont ставит шрифт нужного размера, basicfont как fallback
func loadFont(dc *gg.Context, size float64, style fontStyle) {
	fontsOnce.Do(parseFonts)

	if f, ok := parsedFonts[style]; ok {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// ProgramImage рисует программу дня: по строке на событие, конфликтующие события красным
func ProgramImage(program *service.DayProgram) ([]byte, error) {
	rows := len(program.Items)
	if rows < minImageRows {
		rows = minImageRows
	}
	height := headerHeight + axisHeight + rows*rowHeight + footerHeight

	dc := gg.NewContext(imageWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()

	drawTitle(dc, program)

	if len(program.Items) == 0 {
		loadFont(dc, labelFontSize, fontRegular)
		dc.SetColor(emptyStateColor)
		dc.DrawStringAnchored("Нет событий с корректным временем", imageWidth/2, float64(headerHeight+axisHeight+rowHeight/2), 0.5, 0.5)
		return encodeImage(dc)
	}

	hours := calculateHourRange(program)
	drawHourAxis(dc, hours, rows)
	for i, item := range program.Items {
		drawItem(dc, program, item, i, hours)
	}
	drawLegend(dc, height)

	return encodeImage(dc)
}

func drawTitle(dc *gg.Context, program *service.DayProgram) {
	loadFont(dc, titleFontSize, fontBold)
	dc.SetColor(textColor)
	title := fmt.Sprintf("Программа дня %s", program.Date.Format("02.01.2006"))
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

// calculateHourRange определяет диапазон часов по эффективным окнам
func calculateHourRange(program *service.DayProgram) hourRange {
	minMinute := math.MaxInt
	maxMinute := 0
	for _, item := range program.Items {
		start := int(item.Window.Start.Sub(program.Date).Minutes())
		end := int(item.Window.End.Sub(program.Date).Minutes())
		minMinute = min(minMinute, start)
		maxMinute = max(maxMinute, end)
	}

	// Выезд накануне даёт отрицательные минуты, округляем вниз
	startHour := int(math.Floor(float64(minMinute) / 60))
	endHour := int(math.Ceil(float64(maxMinute) / 60))
	if endHour <= startHour {
		endHour = startHour + 1
	}
	return hourRange{start: startHour, end: endHour}
}

func timelineX(minutesFromStart float64, hours hourRange) float64 {
	width := float64(imageWidth - leftLabelsWidth - rightPadding)
	return float64(leftLabelsWidth) + minutesFromStart/hours.minutes()*width
}

func drawHourAxis(dc *gg.Context, hours hourRange, rows int) {
	top := float64(headerHeight + axisHeight)
	bottom := top + float64(rows*rowHeight)

	for i := 0; i < rows; i++ {
		if i%2 == 0 {
			dc.SetColor(evenRowColor)
			dc.DrawRectangle(0, top+float64(i*rowHeight), imageWidth, rowHeight)
			dc.Fill()
		}
	}

	loadFont(dc, smallFontSize, fontRegular)
	for h := hours.start; h <= hours.end; h++ {
		x := timelineX(float64((h-hours.start)*60), hours)

		dc.SetColor(hourLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(x, top, x, bottom)
		dc.Stroke()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", (h%24+24)%24), x, top-axisHeight/2, 0.5, 0.5)
	}
}

func drawItem(dc *gg.Context, program *service.DayProgram, item service.ProgramItem, row int, hours hourRange) {
	top := float64(headerHeight + axisHeight + row*rowHeight)

	loadFont(dc, labelFontSize, fontRegular)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(truncate(item.Event.Name, 32), 12, top+rowHeight/2, 0, 0.5)

	offset := float64(hours.start * 60)
	x1 := timelineX(item.Window.Start.Sub(program.Date).Minutes()-offset, hours)
	x2 := timelineX(item.Window.End.Sub(program.Date).Minutes()-offset, hours)
	width := math.Max(x2-x1, 2)

	if len(item.Conflicts) > 0 {
		dc.SetColor(conflictColor)
	} else {
		dc.SetColor(barColor)
	}
	dc.DrawRoundedRectangle(x1, top+barPaddingY, width, rowHeight-2*barPaddingY, barRadius)
	dc.Fill()

	label := fmt.Sprintf("%s-%s", item.Window.Start.Format("15:04"), item.Window.End.Format("15:04"))
	loadFont(dc, smallFontSize, fontBold)
	if w, _ := dc.MeasureString(label); w+8 < width {
		dc.SetColor(barTextColor)
		dc.DrawStringAnchored(label, x1+width/2, top+rowHeight/2, 0.5, 0.5)
	}
}

func drawLegend(dc *gg.Context, height int) {
	y := float64(height - footerHeight/2)
	loadFont(dc, smallFontSize, fontRegular)
	items := []struct {
		c     color.Color
		label string
	}{
		{barColor, "без пересечений"},
		{conflictColor, "конфликт по времени (с учётом трансфера)"},
	}

	x := float64(leftLabelsWidth)
	for _, it := range items {
		dc.SetColor(it.c)
		dc.DrawRoundedRectangle(x, y-7, 14, 14, 3)
		dc.Fill()
		dc.SetColor(textColor)
		dc.DrawStringAnchored(it.label, x+22, y, 0, 0.5)
		w, _ := dc.MeasureString(it.label)
		x += 22 + w + 30
	}
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
